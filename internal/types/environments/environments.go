package environments

// Environment selects logger and gin behaviour per deployment stage.
type Environment string

const (
	Production  Environment = "production"
	Development Environment = "development"
	Staging     Environment = "staging"
	Test        Environment = "test"
)
