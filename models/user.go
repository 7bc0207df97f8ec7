package models

// User is a jury or team account
type User struct {
	ID       int64
	Username string
	Name     string
	Roles    []string
}

// HasRole checks whether the user holds the given role
func (u *User) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// Testcase is one input/output pair of a problem
type Testcase struct {
	ID          int64
	ProblemID   int64
	Rank        int
	Description string
}
