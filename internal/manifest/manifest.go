// Package manifest reads and patches app Info.plist manifests.
package manifest

import (
	"fmt"
	"os"
	"strings"

	"howett.net/plist"
)

const (
	bundleIDKey     = "CFBundleIdentifier"
	deviceFamilyKey = "UIDeviceFamily"
)

// Device-family codes as used by UIDeviceFamily.
const (
	FamilyPhone  = 1
	FamilyTablet = 2
)

// Read parses a plist manifest into a key/value document.
func Read(path string) (map[string]interface{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}
	defer f.Close()

	var doc map[string]interface{}
	if err := plist.NewDecoder(f).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return doc, nil
}

// BundleID returns the bundle identifier recorded in the app manifest.
func BundleID(path string) (string, error) {
	doc, err := Read(path)
	if err != nil {
		return "", err
	}

	id, ok := doc[bundleIDKey].(string)
	if !ok || id == "" {
		return "", fmt.Errorf("manifest %s has no %s", path, bundleIDKey)
	}
	return id, nil
}

// SetDeviceFamily rewrites the manifest's UIDeviceFamily for the resolved
// device string: tablet when the string mentions "ipad", phone otherwise.
func SetDeviceFamily(path, deviceString string) error {
	doc, err := Read(path)
	if err != nil {
		return err
	}

	family := FamilyPhone
	if strings.Contains(strings.ToLower(deviceString), "ipad") {
		family = FamilyTablet
	}
	doc[deviceFamilyKey] = []int{family}

	data, err := plist.MarshalIndent(doc, plist.XMLFormat, "\t")
	if err != nil {
		return fmt.Errorf("encoding manifest %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
