package records

import (
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/co42/slackline/internal/output"
)

// AppManifest is the Slack app manifest granting the read-only user scopes
// slackline needs.
const AppManifest = `{
  "display_information": {
    "name": "Slackline CLI",
    "description": "Read-only Slack CLI for AI agents",
    "background_color": "#4a154b"
  },
  "oauth_config": {
    "scopes": {
      "user": [
        "channels:history",
        "channels:read",
        "files:read",
        "groups:history",
        "groups:read",
        "im:history",
        "im:read",
        "mpim:history",
        "mpim:read",
        "search:read",
        "users:read",
        "users:read.email"
      ]
    }
  },
  "settings": {
    "org_deploy_enabled": false,
    "socket_mode_enabled": false,
    "token_rotation_enabled": false
  }
}`

// Scopes are the user scopes requested by AppManifest.
var Scopes = []string{
	"channels:history",
	"channels:read",
	"files:read",
	"groups:history",
	"groups:read",
	"im:history",
	"im:read",
	"mpim:history",
	"mpim:read",
	"search:read",
	"users:read",
	"users:read.email",
}

// CreateAppURL opens the Slack app creation page prefilled with AppManifest.
func CreateAppURL() string {
	return "https://api.slack.com/apps?new_app=1&manifest_json=" +
		strings.ReplaceAll(url.QueryEscape(AppManifest), "+", "%20")
}

// Manifest renders AppManifest: as a JSON object, or verbatim in text.
type Manifest struct{}

var _ json.Marshaler = Manifest{}

func (Manifest) MarshalJSON() ([]byte, error) {
	return []byte(AppManifest), nil
}

func (Manifest) WriteHuman(w io.Writer, _ *output.Theme) {
	fmt.Fprintln(w, AppManifest)
}

// TokenGuide walks the user through creating a user token.
type TokenGuide struct {
	Steps     []string `json:"steps"`
	CreateURL string   `json:"create_url"`
	Manifest  Manifest `json:"manifest"`
	Scopes    []string `json:"scopes"`
}

// NewTokenGuide returns the token creation guide.
func NewTokenGuide() TokenGuide {
	return TokenGuide{
		Steps: []string{
			"Open the Slack app creation URL",
			"Select your workspace",
			"Click 'Create' to create the app from manifest",
			"Go to 'OAuth & Permissions' in the sidebar",
			"Click 'Install to Workspace' and authorize",
			"Copy the 'User OAuth Token' (starts with xoxp-)",
			"Store the token securely",
		},
		CreateURL: CreateAppURL(),
		Scopes:    Scopes,
	}
}

func (g TokenGuide) WriteHuman(w io.Writer, t *output.Theme) {
	heavy := strings.Repeat("═", 60)
	light := strings.Repeat("─", 60)

	fmt.Fprintf(w, "\n%s\n  %s\n%s\n\n", heavy, t.Bold.Sprint("CREATE A SLACK USER TOKEN FOR SLACKLINE"), heavy)
	fmt.Fprintf(w, "1. Open this URL to create a Slack app with the right permissions:\n\n")
	fmt.Fprintf(w, "   %s\n\n", t.Cyan.Sprint(g.CreateURL))
	fmt.Fprintf(w, "2. Select your workspace and click 'Create'\n\n")
	fmt.Fprintf(w, "3. In the app settings, go to 'OAuth & Permissions'\n\n")
	fmt.Fprintf(w, "4. Click 'Install to Workspace' and authorize\n\n")
	fmt.Fprintf(w, "5. Copy the 'User OAuth Token' (starts with xoxp-)\n\n")
	fmt.Fprintf(w, "6. Store it securely:\n\n")
	fmt.Fprintf(w, "   %s\n", t.Dim.Sprint("# macOS Keychain (recommended):"))
	fmt.Fprintf(w, "   security add-generic-password -s slack-token -a $USER -w 'xoxp-...'\n\n")
	fmt.Fprintf(w, "   %s\n", t.Dim.Sprint("# Then use with:"))
	fmt.Fprintf(w, "   export SLACK_TOKEN=$(security find-generic-password -s slack-token -w)\n\n")
	fmt.Fprintf(w, "   %s\n", t.Dim.Sprint("# Or add to ~/.zshrc:"))
	fmt.Fprintf(w, "   export SLACK_TOKEN='xoxp-...'\n\n")
	fmt.Fprintf(w, "%s\n  Scopes included: %s\n%s\n\n", light, strings.Join(g.Scopes, ", "), light)
}
