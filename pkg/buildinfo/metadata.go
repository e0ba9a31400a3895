package buildinfo

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Metadata keys.
const (
	KeyGroupID      = "groupId"
	KeyArtifactID   = "artifactId"
	KeyVersion      = "version"
	KeyName         = "name"
	KeyDescription  = "description"
	KeyDevelopers   = "developers"
	KeyOwners       = "owners"
	KeyOrganization = "organization"
	KeyBuildNumber  = "buildNumber"
	KeyScmBranch    = "scmBranch"
	KeyTimestamp    = "timestamp"
	KeyError        = "error"
)

// Metadata is project metadata keyed by the Key* constants.
type Metadata map[string]any

// Get returns the value for key, or def when the key is absent.
func (m Metadata) Get(key string, def any) any {
	if v, ok := m[key]; ok {
		return v
	}
	return def
}

// Err returns UnavailableMessage for a placeholder map and "" otherwise.
func (m Metadata) Err() string {
	s, _ := m[KeyError].(string)
	return s
}

// File is the YAML layout read by ReadFile:
//
//	groupId: fr.example
//	artifactId: billing-api
//	version: 1.4.0
//	name: Billing API
//	description: Invoices and payments
//	developers: [ann@example.fr, bob@example.fr]
//	owners: team-billing@example.fr
//	organization: Example
//	buildNumber: "512"
//	scmBranch: main
type File struct {
	GroupID      string `yaml:"groupId"`
	ArtifactID   string `yaml:"artifactId"`
	Version      string `yaml:"version"`
	Name         string `yaml:"name"`
	Description  string `yaml:"description"`
	Developers   list   `yaml:"developers"`
	Owners       list   `yaml:"owners"`
	Organization string `yaml:"organization"`
	BuildNumber  string `yaml:"buildNumber"`
	ScmBranch    string `yaml:"scmBranch"`
}

// list accepts a scalar or a sequence and joins sequences with ", ".
type list string

func (l *list) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = list(node.Value)
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := node.Decode(&items); err != nil {
			return err
		}
		*l = list(strings.Join(items, ", "))
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// Parse decodes YAML metadata. Missing identity fields become Unknown and
// missing descriptive fields become empty strings.
func Parse(data []byte) (Metadata, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMetadata, err)
	}
	return f.Metadata(), nil
}

// Metadata converts the file to a Metadata map stamped with the current time.
func (f File) Metadata() Metadata {
	return Metadata{
		KeyGroupID:      orUnknown(f.GroupID),
		KeyArtifactID:   orUnknown(f.ArtifactID),
		KeyVersion:      orUnknown(f.Version),
		KeyName:         orUnknown(f.Name),
		KeyDescription:  f.Description,
		KeyDevelopers:   string(f.Developers),
		KeyOwners:       string(f.Owners),
		KeyOrganization: f.Organization,
		KeyBuildNumber:  orUnknown(f.BuildNumber),
		KeyScmBranch:    orUnknown(f.ScmBranch),
		KeyTimestamp:    Timestamp(),
	}
}

// UnavailableMessage is the "error" value of a placeholder map. The cause
// stays server side; use Load to get it.
const UnavailableMessage = "metadata unavailable"

// Load reads YAML metadata from path. On failure it returns the placeholder
// map holding only "error" and "timestamp" together with the cause, which
// may name the file and must not be sent to clients.
func Load(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return placeholder(), fmt.Errorf("%w: %w", ErrMetadataNotFound, err)
	}
	meta, err := Parse(data)
	if err != nil {
		return placeholder(), err
	}
	return meta, nil
}

// ReadFile is Load without the cause. It never fails the caller.
func ReadFile(path string) Metadata {
	meta, _ := Load(path)
	return meta
}

func placeholder() Metadata {
	return Metadata{
		KeyError:     UnavailableMessage,
		KeyTimestamp: Timestamp(),
	}
}

// Timestamp formats the current time as RFC 3339 in UTC.
func Timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}
