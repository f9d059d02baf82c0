package models

// HouseholdHours is the yearly hours assumed for every employed member
const HouseholdHours = 2000

// MinParentAge is the age at least one founding spouse must have to add a child
const MinParentAge = 21

// Family is a household founded by two spouses, followed by children in the order added
type Family struct {
	members []*Person
}

// NewFamily marries the two spouses to each other and founds a family.
// If either spouse is too young to marry, that side of the link is silently
// skipped but both still become members.
func NewFamily(spouse1, spouse2 *Person) *Family {
	spouse1.SetSpouse(spouse2)
	spouse2.SetSpouse(spouse1)

	return &Family{
		members: []*Person{spouse1, spouse2},
	}
}

// Members returns all members in insertion order
func (f *Family) Members() []*Person {
	members := make([]*Person, len(f.members))
	copy(members, f.members)
	return members
}

// Spouses returns the two founding spouses
func (f *Family) Spouses() (*Person, *Person) {
	return f.members[0], f.members[1]
}

// Children returns the members added after the founding spouses
func (f *Family) Children() []*Person {
	children := make([]*Person, len(f.members)-2)
	copy(children, f.members[2:])
	return children
}

// HaveChild adds the child if at least one founding spouse is MinParentAge or older
func (f *Family) HaveChild(child *Person) bool {
	if f.members[0].Age >= MinParentAge || f.members[1].Age >= MinParentAge {
		f.members = append(f.members, child)
		return true
	}
	return false
}

// HouseholdIncome sums every employed member's income over HouseholdHours
func (f *Family) HouseholdIncome() float64 {
	var income float64
	for _, member := range f.members {
		if job := member.Job(); job != nil {
			income += float64(job.CalculateIncome(HouseholdHours))
		}
	}
	return income
}
