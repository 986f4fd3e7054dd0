package configuration

type Configuration struct {
	Input      string `usage:"command file, '-' reads stdin"`
	Output     string `usage:"results file, '-' writes stdout"`
	Format     string `usage:"output format: text or json"`
	Verbose    bool   `usage:"log progress to stderr"`
	Version    bool   `usage:"show version and exit"`
	ShowConfig bool   `usage:"print config"`
}

func Default() *Configuration {
	return &Configuration{
		Input:  "-",
		Output: "-",
		Format: "text",
	}
}
