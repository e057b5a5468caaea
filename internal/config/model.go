package config

type PickerMode string

const (
	// PickerDialog asks the user through a native dialog on every save.
	PickerDialog PickerMode = "dialog"
	// PickerFixed always saves under DefaultFolder without prompting.
	PickerFixed PickerMode = "fixed"
)

type Config struct {
	APIListen      string     `yaml:"apiListen"`
	BearerToken    string     `yaml:"bearerToken"`
	Debug          bool       `yaml:"debug"`
	AllowedOrigins []string   `yaml:"allowedOrigins"`
	MaxBodyMB      int        `yaml:"maxBodyMB"`
	Picker         PickerMode `yaml:"picker"`
	DefaultFolder  string     `yaml:"defaultFolder"`
	MatchExtension bool       `yaml:"matchExtension"`
}

func PickerValues() []PickerMode {
	return []PickerMode{PickerDialog, PickerFixed}
}

func PickerOptions() []string {
	vals := PickerValues()
	out := make([]string, 0, len(vals))
	for _, v := range vals {
		out = append(out, string(v))
	}
	return out
}

func IsPickerMode(val string) bool {
	for _, v := range PickerValues() {
		if string(v) == val {
			return true
		}
	}
	return false
}

func Default() Config {
	return Config{
		APIListen:      "127.0.0.1:8765",
		AllowedOrigins: []string{"http://localhost:1420", "tauri://localhost"},
		MaxBodyMB:      64,
		Picker:         PickerDialog,
		DefaultFolder:  "",
	}
}
