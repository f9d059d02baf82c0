package scenario

// Household is the file and wire format of a household scenario
type Household struct {
	Name     string   `yaml:"name" json:"name"`
	Currency string   `yaml:"currency" json:"currency"`
	Spouses  []Person `yaml:"spouses" json:"spouses"`
	Children []Person `yaml:"children" json:"children"`
}

type Person struct {
	FirstName string `yaml:"first_name" json:"first_name"`
	LastName  string `yaml:"last_name" json:"last_name"`
	Age       int    `yaml:"age" json:"age"`
	Job       *Job   `yaml:"job" json:"job,omitempty"`
}

type Job struct {
	Title  string  `yaml:"title" json:"title"`
	Type   string  `yaml:"type" json:"type"`
	Rate   float64 `yaml:"rate" json:"rate,omitempty"`
	Salary int64   `yaml:"salary" json:"salary,omitempty"`
	Raises []Raise `yaml:"raises" json:"raises,omitempty"`
}

type Raise struct {
	Amount  *float64 `yaml:"amount" json:"amount,omitempty"`
	Percent *float64 `yaml:"percent" json:"percent,omitempty"`
}
