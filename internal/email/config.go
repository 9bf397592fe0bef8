package email

// Config holds the SMTP account used for outgoing mail.
type Config struct {
	Host      string
	Port      int
	Username  string
	Password  string
	FromEmail string
	FromName  string
}

// Enabled reports whether a server is configured.
func (c Config) Enabled() bool {
	return c.Host != ""
}
