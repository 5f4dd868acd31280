package config

type Config struct {
	Environment  Environment
	Log          Log
	HTTP         HTTPServer
	FrontendURL  string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"webhook_events.db"`

	Stripe   Stripe   `envPrefix:"STRIPE_"`
	SMTP     SMTP     `envPrefix:"SMTP_"`
	Business Business `envPrefix:"BUSINESS_"`
}

type Stripe struct {
	SecretKey     string `env:"SECRET_KEY"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

type SMTP struct {
	Host     string `env:"HOST" envDefault:"smtp.gmail.com"`
	Port     string `env:"PORT" envDefault:"587"`
	User     string `env:"USER"`
	Password string `env:"PASS"`
}

type Business struct {
	Name  string `env:"NAME" envDefault:"BCB Sounds"`
	Email string `env:"EMAIL"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

func (e Environment) IsProduction() bool {
	return e.Name == "production"
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"3001"`
}

// MailConfigured reports whether SMTP credentials are present. The server
// still starts without them so the checkout flow can be exercised alone.
func (c *Config) MailConfigured() bool {
	return c.SMTP.User != "" && c.SMTP.Password != ""
}

func (c *Config) StripeConfigured() bool {
	return c.Stripe.SecretKey != ""
}

// AdminEmail is the recipient for admin alerts and contact-form relays.
// Falls back to the SMTP account when no separate business address is set.
func (c *Config) AdminEmail() string {
	if c.Business.Email != "" {
		return c.Business.Email
	}
	return c.SMTP.User
}
