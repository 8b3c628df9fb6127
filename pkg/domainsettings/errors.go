package domainsettings

import "errors"

var (
	ErrEmptyHomeURL           = errors.New("home url is empty")
	ErrInvalidHomeURL         = errors.New("home url has no host")
	ErrNoDomains              = errors.New("no language domains configured")
	ErrEmptyLanguage          = errors.New("language identifier is empty")
	ErrInvalidLanguage        = errors.New("invalid language identifier")
	ErrDuplicateLanguage      = errors.New("language configured more than once")
	ErrInvalidDomain          = errors.New("domain url has no host")
	ErrDefaultLanguageMissing = errors.New("default language has no domain")

	// ErrSettingsNotFound is returned by stores holding no settings at all.
	ErrSettingsNotFound = errors.New("language domain settings not found")

	ErrFailedToReadFile   = errors.New("failed to read settings file")
	ErrFailedToParseFile  = errors.New("failed to parse settings file")
	ErrFailedToParseEnv   = errors.New("failed to parse settings from environment")
	ErrFailedToLoad       = errors.New("failed to load settings")
	ErrFailedToSave       = errors.New("failed to save settings")
	ErrInvalidSettings    = errors.New("invalid language domain settings")
	ErrMalformedDomainMap = errors.New("malformed language domain list")
)
