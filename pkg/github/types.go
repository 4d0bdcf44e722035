package github

// Repository identifies a repository on the remote service.
type Repository struct {
	Owner    string `json:"owner"`
	Name     string `json:"name"`
	FullName string `json:"full_name"`
}

// Milestone is a remote milestone handle. Number is the API identifier used
// when attaching issues or deleting the milestone.
type Milestone struct {
	Number int    `json:"number"`
	Title  string `json:"title"`
}

// Target is the fully-qualified repository identifier resolved from flags,
// config, and prompts.
type Target struct {
	Owner string
	Name  string
}

func (t Target) String() string {
	return t.Owner + "/" + t.Name
}
