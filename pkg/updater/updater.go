package updater

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"focalpick/pkg/version"
)

const releaseURL = "https://api.github.com/repos/focalpick/focalpick/releases/latest"

type Release struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// CheckForUpdates queries GitHub for the latest release.
// Returns the new version tag and its URL if an update is available,
// empty strings otherwise.
func CheckForUpdates() (string, string, error) {
	// Short timeout so startup never blocks on a slow network
	client := http.Client{
		Timeout: 2 * time.Second,
	}

	resp, err := client.Get(releaseURL)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("github api returned status: %s", resp.Status)
	}

	var rel Release
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return "", "", err
	}

	if compareVersions(rel.TagName, version.Version) > 0 {
		return rel.TagName, rel.HTMLURL, nil
	}

	return "", "", nil
}

// compareVersions returns 1 if v1 > v2, -1 if v1 < v2, 0 if equal.
// Plain string compare; good enough while tags stay below 0.10.
func compareVersions(v1, v2 string) int {
	v1 = strings.TrimPrefix(v1, "v")
	v2 = strings.TrimPrefix(v2, "v")

	if v1 == v2 {
		return 0
	}
	if v1 > v2 {
		return 1
	}
	return -1
}
