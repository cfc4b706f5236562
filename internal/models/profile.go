package models

// Profile is a named build configuration.
type Profile int

const (
	ProfileDebug Profile = iota
	ProfileRelease
)

// ProfileFromRelease maps the --release flag to a profile.
func ProfileFromRelease(release bool) Profile {
	if release {
		return ProfileRelease
	}
	return ProfileDebug
}

// String returns the profile name, which is also meson's buildtype value and
// the build directory name.
func (p Profile) String() string {
	switch p {
	case ProfileRelease:
		return "release"
	default:
		return "debug"
	}
}

// Description is the cargo-style summary printed after a build.
func (p Profile) Description() string {
	switch p {
	case ProfileRelease:
		return "[optimized]"
	default:
		return "[unoptimized + debuginfo]"
	}
}
