package caps

import (
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

// Orientation values accepted for a session.
const (
	OrientationPortrait  = "PORTRAIT"
	OrientationLandscape = "LANDSCAPE"
)

// DefaultLocalizableStringsDir is used when the session does not name one.
const DefaultLocalizableStringsDir = "en.lproj"

// UDIDAuto asks the driver to detect the attached device identifier itself.
const UDIDAuto = "auto"

// preferencesBundleID is the pre-installed Settings app, substituted when a
// session asks for app "settings" on iOS 8+.
const preferencesBundleID = "com.apple.Preferences"

// ValidationError reports a malformed or contradictory capability set. It is
// fatal and surfaced before any device interaction is attempted.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// CapabilitySet holds the session-requested properties plus the fields derived
// during normalization. Normalization returns a new value rather than mutating
// its input, so a failed validation leaves the caller's record untouched.
type CapabilitySet struct {
	App                        string
	BundleID                   string
	UDID                       string
	DeviceName                 string
	PlatformVersion            string
	DeviceOrientation          string
	Orientation                string
	NoReset                    bool
	NativeInstrumentsLib       bool
	RobotAddress               string
	RobotPort                  int
	LocationServicesAuthorized *bool
	Language                   string
	LocalizableStringsDir      string
	ForceIphone                *bool
	ForceIpad                  *bool
	DefaultDevice              bool

	// Derived by Normalize.
	WithoutDelay       bool
	Reset              bool
	InitialOrientation string
	UseRobot           bool
	RobotURL           string

	// Attached by the device resolver.
	DeviceString string
	MatchedUDID  string
}

// ParseJSON builds a CapabilitySet from a desired-capabilities JSON document.
func ParseJSON(raw []byte) (CapabilitySet, error) {
	if !gjson.ValidBytes(raw) {
		return CapabilitySet{}, ValidationError("capabilities document is not valid JSON")
	}

	doc := gjson.ParseBytes(raw)
	c := CapabilitySet{
		App:                   doc.Get("app").String(),
		BundleID:              doc.Get("bundleId").String(),
		UDID:                  doc.Get("udid").String(),
		DeviceName:            doc.Get("deviceName").String(),
		PlatformVersion:       doc.Get("platformVersion").String(),
		DeviceOrientation:     doc.Get("deviceOrientation").String(),
		Orientation:           doc.Get("orientation").String(),
		NoReset:               doc.Get("noReset").Bool(),
		NativeInstrumentsLib:  doc.Get("nativeInstrumentsLib").Bool(),
		RobotAddress:          doc.Get("robotAddress").String(),
		RobotPort:             int(doc.Get("robotPort").Int()),
		Language:              doc.Get("language").String(),
		LocalizableStringsDir: doc.Get("localizableStringsDir").String(),
		DefaultDevice:         doc.Get("defaultDevice").Bool(),
	}

	if v := doc.Get("locationServicesAuthorized"); v.Exists() {
		b := v.Bool()
		c.LocationServicesAuthorized = &b
	}
	if v := doc.Get("forceIphone"); v.Exists() {
		b := v.Bool()
		c.ForceIphone = &b
	}
	if v := doc.Get("forceIpad"); v.Exists() {
		b := v.Bool()
		c.ForceIpad = &b
	}

	return c, nil
}

// Normalize validates the capability set and fills in its derived fields,
// returning the completed copy.
func Normalize(c CapabilitySet, logger *slog.Logger) (CapabilitySet, error) {
	if c.LocationServicesAuthorized != nil && c.BundleID == "" {
		return c, ValidationError("locationServicesAuthorized requires bundleId")
	}

	if c.PlatformVersion != "" && c.PlatformVersionFloat() < 7.1 {
		logger.Warn("iOS versions below 7.1 are deprecated and will be removed in a future release",
			"platformVersion", c.PlatformVersion)
	}

	c.WithoutDelay = c.NativeInstrumentsLib
	c.Reset = !c.NoReset
	c.InitialOrientation = initialOrientation(c, logger)
	c.UseRobot = c.RobotPort > 0
	if c.UseRobot {
		c.RobotURL = fmt.Sprintf("http://%s:%d", c.RobotAddress, c.RobotPort)
	} else {
		c.RobotURL = ""
	}

	if c.LocalizableStringsDir == "" {
		c.LocalizableStringsDir = DefaultLocalizableStringsDir
	}

	return c, nil
}

func initialOrientation(c CapabilitySet, logger *slog.Logger) string {
	for _, o := range []string{c.DeviceOrientation, c.Orientation} {
		if o == "" {
			continue
		}
		o = strings.ToUpper(o)
		if o == OrientationPortrait || o == OrientationLandscape {
			return o
		}
		logger.Warn("ignoring unknown orientation", "orientation", o)
	}
	return OrientationPortrait
}

// noAppMessage matches the historical driver error word for word; clients
// pattern-match on it.
const noAppMessage = "Please provide the 'app' or 'browserName' capability or start " +
	"appium with the --app or --browser-name argument. Alternatively, you may " +
	"provide the 'bundleId' and 'udid' capabilities for an app under test on " +
	"a real device."

// NormalizeApp reconciles the app and bundleId capabilities: an app value that
// is really a bundle identifier is moved over, and the "settings" shorthand is
// rewritten to the pre-installed Preferences app on iOS 8+.
func NormalizeApp(c CapabilitySet, logger *slog.Logger) (CapabilitySet, error) {
	if c.App == "" && !(c.BundleID != "" && (c.PlatformVersionFloat() >= 8 || c.UDID != "")) {
		return c, ValidationError(noAppMessage)
	}

	if strings.EqualFold(c.App, "settings") && c.PlatformVersionFloat() >= 8 {
		logger.Debug("using the pre-installed Settings app", "bundleId", preferencesBundleID)
		c.BundleID = preferencesBundleID
		c.App = ""
		return c, nil
	}

	if c.BundleID == "" && IsBundleIdentifier(c.App) {
		logger.Debug("app capability looks like a bundle id", "app", c.App)
		c.BundleID = c.App
		return c, nil
	}

	if IsBundleIdentifier(c.BundleID) && (c.App == "" || IsBundleIdentifier(c.App)) {
		logger.Debug("running pre-existing app by bundle id", "bundleId", c.BundleID)
	}

	return c, nil
}

var bundleIDPattern = regexp.MustCompile(`^([A-Za-z0-9_-]+\.)+[A-Za-z0-9_-]+$`)

// IsBundleIdentifier reports whether s looks like a bundle identifier: two or
// more dot-separated segments of letters, digits, underscores, or hyphens.
func IsBundleIdentifier(s string) bool {
	return bundleIDPattern.MatchString(s)
}

// PlatformVersionFloat returns the requested platform version as a
// major.minor float for ordering, or 0 when unset or unparseable.
func (c CapabilitySet) PlatformVersionFloat() float64 {
	return VersionFloat(c.PlatformVersion)
}

// VersionFloat parses the leading major.minor of a dotted version string.
// Unparseable input yields 0.
func VersionFloat(s string) float64 {
	parts := strings.SplitN(strings.TrimSpace(s), ".", 3)
	switch len(parts) {
	case 0:
		return 0
	case 1:
		f, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0
		}
		return f
	default:
		f, err := strconv.ParseFloat(parts[0]+"."+parts[1], 64)
		if err != nil {
			return 0
		}
		return f
	}
}
