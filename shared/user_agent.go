package shared

import (
	"fmt"
	"net/http"
	"os"
	"strings"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_user_agent.go -package mocks notes_board/shared IUserAgent

const (
	versionFileName       = "version.txt"
	userAgentTemplate     = "Notes-Board/%s (+https://%s)"
	userAgentNoHostFormat = "Notes-Board/%s"
	devVersion            = "dev"
)

type IUserAgent interface {
	AddUserAgent(req *http.Request)
}

type userAgent struct {
	userAgentValue string
}

func NewUserAgent(cfg *Config) IUserAgent {
	return &userAgent{
		userAgentValue: buildUserAgentString(ReadVersion(cfg), cfg.Host),
	}
}

// ReadVersion returns the version from version.txt in the www directory,
// without a leading "v", or "dev" if the file is missing.
func ReadVersion(cfg *Config) string {
	versionBytes, err := os.ReadFile(cfg.WwwDir + versionFileName)
	if err != nil {
		return devVersion
	}
	versionStr := strings.TrimSpace(string(versionBytes))
	versionStr = strings.TrimPrefix(versionStr, "v")
	if versionStr == "" {
		return devVersion
	}
	return versionStr
}

func buildUserAgentString(version, host string) string {
	if host == "" {
		return fmt.Sprintf(userAgentNoHostFormat, version)
	}
	return fmt.Sprintf(userAgentTemplate, version, host)
}

func (ua *userAgent) AddUserAgent(req *http.Request) {
	req.Header.Set("User-Agent", ua.userAgentValue)
}
