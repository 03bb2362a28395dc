package domain

// Group is a named grouping of tests inside a suite.
type Group struct {
	Name string
}

// Suite identifies the test suite a live test belongs to. Every suite owns a
// root Group that implicitly contains all of its entries.
type Suite struct {
	Name  string
	Group *Group
}

// NewSuite creates a suite with its implicit root group. The root group
// carries the suite's name.
func NewSuite(name string) *Suite {
	return &Suite{
		Name:  name,
		Group: &Group{Name: name},
	}
}

// TestCase identifies a single test inside a suite.
type TestCase struct {
	Name string
}
