package admin

// Config is loaded from the environment (and a .env file) by NewApp.
type Config struct {
	AppName     string `env:"APP_NAME" envDefault:"viewrouter"`
	Env         string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	BasePath    string `env:"BASE_URL" envDefault:"/"`
	StrictSlash bool   `env:"ROUTES_STRICT_SLASH" envDefault:"false"`
	// RoutesFile replaces the built-in table with one loaded by core/routefile.
	RoutesFile string `env:"ROUTES_FILE"`
}
