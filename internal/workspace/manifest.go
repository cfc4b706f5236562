package workspace

import (
	"strings"

	cerrors "github.com/jakoblorz/carton/internal/errors"
	"github.com/jakoblorz/carton/internal/models"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// ParseManifest validates manifest bytes read from path.
//
// The document is decoded loosely so that wrong field types are reported as
// malformed rather than silently coerced.
func ParseManifest(path string, data []byte) (*models.Manifest, error) {
	var doc map[string]interface{}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, cerrors.Wrap(cerrors.MalformedManifest, err, "failed to parse %s", path)
	}
	if doc == nil {
		return nil, cerrors.New(cerrors.MalformedManifest, "%s is empty", path)
	}

	name, err := stringField(doc, path, "name")
	if err != nil {
		return nil, err
	}
	if err := ValidateProjectName(name); err != nil {
		return nil, cerrors.Wrap(cerrors.MalformedManifest, err, "invalid name in %s", path)
	}

	kindKey := "kind"
	if _, ok := doc[kindKey]; !ok {
		kindKey = "type"
	}
	rawKind, err := stringField(doc, path, kindKey)
	if err != nil {
		return nil, err
	}
	kind, err := models.ParseProjectKind(rawKind)
	if err != nil {
		return nil, cerrors.Wrap(cerrors.UnsupportedKind, err, "invalid kind in %s", path)
	}

	manifest := &models.Manifest{Name: name, Kind: kind}

	if raw, ok := doc["version"]; ok {
		version, isString := raw.(string)
		if !isString {
			return nil, cerrors.New(cerrors.MalformedManifest, "%s: field \"version\" must be a string, got %v", path, raw)
		}
		if !semver.IsValid("v" + strings.TrimPrefix(version, "v")) {
			return nil, cerrors.New(cerrors.MalformedManifest, "%s: version %q is not a semantic version", path, version)
		}
		manifest.Version = version
	}

	return manifest, nil
}

func stringField(doc map[string]interface{}, path, key string) (string, error) {
	raw, ok := doc[key]
	if !ok {
		if key == "type" {
			return "", cerrors.New(cerrors.MalformedManifest, "%s: missing field \"kind\"", path)
		}
		return "", cerrors.New(cerrors.MalformedManifest, "%s: missing field %q", path, key)
	}
	value, ok := raw.(string)
	if !ok {
		return "", cerrors.New(cerrors.MalformedManifest, "%s: field %q must be a string, got %v", path, key, raw)
	}
	return value, nil
}
