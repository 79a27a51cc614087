package credentials

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/lincli/lincli/pkg/voyager/cookies"
)

// envCredentials are read from the process environment. Either the two
// session cookies or a full browser cookie header can be supplied.
type envCredentials struct {
	LiAt       string `env:"LI_AT"`
	JSESSIONID string `env:"JSESSIONID"`
	CookieStr  string `env:"LINKEDIN_COOKIES"`
}

type fileCredentials struct {
	LiAt       string `yaml:"li_at"`
	JSESSIONID string `yaml:"jsessionid"`
	CookieStr  string `yaml:"cookies"`
}

// DefaultPath is where Load looks when no --credentials flag was given.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".lincli", "credentials.yaml"), nil
}

// Load builds session credentials from the environment first, falling back to
// the yaml credentials file. The provenance tag records which source won.
func Load(path string) (*cookies.Credentials, error) {
	var fromEnv envCredentials
	if err := env.Parse(&fromEnv); err != nil {
		return nil, err
	}
	if jar := buildJar(fromEnv.CookieStr, fromEnv.LiAt, fromEnv.JSESSIONID); jar != nil {
		return cookies.NewCredentials(jar, cookies.ProvenanceEnv)
	}

	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("no credentials in environment and none at %s: %w", path, err)
	}

	var fromFile fileCredentials
	if err := yaml.Unmarshal(raw, &fromFile); err != nil {
		return nil, fmt.Errorf("failed to parse credentials file %s: %w", path, err)
	}

	jar := buildJar(fromFile.CookieStr, fromFile.LiAt, fromFile.JSESSIONID)
	if jar == nil {
		return nil, fmt.Errorf("credentials file %s has neither cookies nor li_at/jsessionid", path)
	}
	return cookies.NewCredentials(jar, cookies.ProvenanceFile)
}

func buildJar(cookieStr string, liAt string, jsessionid string) *cookies.Cookies {
	if cookieStr != "" {
		jar := cookies.NewCookiesFromString(cookieStr)
		if !jar.IsCookieEmpty(cookies.LinkedInLiAt) {
			return jar
		}
		return nil
	}
	if liAt == "" || jsessionid == "" {
		return nil
	}
	jar := cookies.NewCookies()
	jar.Set(cookies.LinkedInLiAt, liAt)
	jar.Set(cookies.LinkedInJSESSIONID, jsessionid)
	return jar
}
