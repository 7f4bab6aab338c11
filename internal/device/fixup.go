package device

// The simulator device strings the resolver derives are broken for some
// toolchain/SDK combinations: the generic "iPhone Simulator"/"iPad Simulator"
// names stopped being valid launch targets, and the concrete replacement
// device differs by version. These tables are hand-curated, exact-string
// overrides covering iOS 7.1 through 9.0; anything not listed passes through
// unchanged. Keep the values verbatim, they are matched byte for byte by the
// toolchain.

// deviceFixupsXcode7 corrects strings derived under Xcode 7, where the
// version suffix carries no "Simulator" marker. Keys in the older suffixed
// form are kept so explicitly supplied device names are corrected too.
var deviceFixupsXcode7 = map[string]string{
	"iPad Simulator (7.1)":   "iPad 2 (7.1)",
	"iPad Simulator (8.0)":   "iPad 2 (8.0)",
	"iPad Simulator (8.1)":   "iPad 2 (8.1)",
	"iPad Simulator (8.2)":   "iPad 2 (8.2)",
	"iPad Simulator (8.3)":   "iPad 2 (8.3)",
	"iPad Simulator (8.4)":   "iPad 2 (8.4)",
	"iPad Simulator (9.0)":   "iPad 2 (9.0)",
	"iPhone Simulator (7.1)": "iPhone 5s (7.1)",
	"iPhone Simulator (8.0)": "iPhone 6 (8.0)",
	"iPhone Simulator (8.1)": "iPhone 6 (8.1)",
	"iPhone Simulator (8.2)": "iPhone 6 (8.2)",
	"iPhone Simulator (8.3)": "iPhone 6 (8.3)",
	"iPhone Simulator (8.4)": "iPhone 6 (8.4)",
	"iPhone Simulator (9.0)": "iPhone 6 (9.0)",

	"iPad Simulator (7.1 Simulator)":   "iPad 2 (7.1)",
	"iPad Simulator (8.0 Simulator)":   "iPad 2 (8.0)",
	"iPad Simulator (8.1 Simulator)":   "iPad 2 (8.1)",
	"iPad Simulator (8.2 Simulator)":   "iPad 2 (8.2)",
	"iPad Simulator (8.3 Simulator)":   "iPad 2 (8.3)",
	"iPad Simulator (8.4 Simulator)":   "iPad 2 (8.4)",
	"iPad Simulator (9.0 Simulator)":   "iPad 2 (9.0)",
	"iPhone Simulator (7.1 Simulator)": "iPhone 5s (7.1)",
	"iPhone Simulator (8.0 Simulator)": "iPhone 6 (8.0)",
	"iPhone Simulator (8.1 Simulator)": "iPhone 6 (8.1)",
	"iPhone Simulator (8.2 Simulator)": "iPhone 6 (8.2)",
	"iPhone Simulator (8.3 Simulator)": "iPhone 6 (8.3)",
	"iPhone Simulator (8.4 Simulator)": "iPhone 6 (8.4)",
	"iPhone Simulator (9.0 Simulator)": "iPhone 6 (9.0)",
}

// deviceFixups corrects strings derived under every other Xcode version,
// where the "(<version> Simulator)" suffix is kept.
var deviceFixups = map[string]string{
	"iPad Simulator (7.1 Simulator)":   "iPad 2 (7.1 Simulator)",
	"iPad Simulator (8.0 Simulator)":   "iPad 2 (8.0 Simulator)",
	"iPad Simulator (8.1 Simulator)":   "iPad 2 (8.1 Simulator)",
	"iPad Simulator (8.2 Simulator)":   "iPad 2 (8.2 Simulator)",
	"iPad Simulator (8.3 Simulator)":   "iPad 2 (8.3 Simulator)",
	"iPad Simulator (8.4 Simulator)":   "iPad 2 (8.4 Simulator)",
	"iPad Simulator (9.0 Simulator)":   "iPad 2 (9.0 Simulator)",
	"iPhone Simulator (7.1 Simulator)": "iPhone 5s (7.1 Simulator)",
	"iPhone Simulator (8.0 Simulator)": "iPhone 6 (8.0 Simulator)",
	"iPhone Simulator (8.1 Simulator)": "iPhone 6 (8.1 Simulator)",
	"iPhone Simulator (8.2 Simulator)": "iPhone 6 (8.2 Simulator)",
	"iPhone Simulator (8.3 Simulator)": "iPhone 6 (8.3 Simulator)",
	"iPhone Simulator (8.4 Simulator)": "iPhone 6 (8.4 Simulator)",
	"iPhone Simulator (9.0 Simulator)": "iPhone 6 (9.0 Simulator)",
}

// fixupTable selects the override table for an Xcode major version.
func fixupTable(xcodeMajor int) map[string]string {
	if xcodeMajor == 7 {
		return deviceFixupsXcode7
	}
	return deviceFixups
}
