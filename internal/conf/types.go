package conf

type Config struct {
	Log    Log    `toml:"log"`
	Report Report `toml:"report"`
}

type Log struct {
	Level string `toml:"level"`
	Debug bool   `toml:"debug"`
}

type Report struct {
	Locale string `toml:"locale"`
}
