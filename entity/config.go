package entity

type RootConfig struct {
	User    UserConfig `json:"user"`
	Sniffer string     `json:"sniffer,omitempty"`
	Output  string     `json:"output,omitempty"`
}

type UserConfig struct {
	Token string `json:"token"`
}
