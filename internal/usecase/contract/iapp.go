package contract

// IAppLogger defines the logging operations used across usecases.
type IAppLogger interface {
	Debugf(format string, args ...interface{})
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Fatalf(format string, args ...interface{})
}

// IConfigProvider exposes the configuration values usecases depend on.
type IConfigProvider interface {
	// GetMaxUploadFiles caps how many images one create-event call may carry.
	GetMaxUploadFiles() int
}

// IValidator defines input validation operations.
type IValidator interface {
	ValidateEmail(email string) error
}
