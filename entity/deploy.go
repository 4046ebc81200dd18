package entity

// DeployStep is one external process invocation in the deploy sequence
type DeployStep struct {
	Emoji string
	Title string
	Argv  []string
}
