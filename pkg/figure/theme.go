package figure

// ThemeDark is the fixed visual theme applied to every rendered figure.
const ThemeDark = "dark"

// Color palette for series, assigned in order.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// ApplyTheme sets the fixed theme and assigns palette colors to series that
// have none. Called once, after construction.
func ApplyTheme(f *Figure) {
	f.Theme = ThemeDark
	for i := range f.Series {
		if f.Series[i].Color == "" {
			f.Series[i].Color = defaultColors[i%len(defaultColors)]
		}
	}
}
