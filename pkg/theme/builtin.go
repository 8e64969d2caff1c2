package theme

var light = Palette{Background: "#ffffff", Text: "#000000", Meta: "#666666"}

func withGrades(base Palette, g0, g1, g2, g3, g4 string) Palette {
	base.Grades = [5]string{g0, g1, g2, g3, g4}
	return base
}

// Builtin is the registry every surface uses.
var Builtin = NewRegistry(
	Theme{ID: "standard", Label: "GitHub", Palette: withGrades(light, "#ebedf0", "#9be9a8", "#40c463", "#30a14e", "#216e39")},
	Theme{ID: "halloween", Label: "Halloween", Palette: withGrades(light, "#ebedf0", "#ffee4a", "#ffc501", "#fe9600", "#03001c")},
	Theme{ID: "teal", Label: "Teal", Palette: withGrades(light, "#ebedf0", "#7fffd4", "#76eec6", "#66cdaa", "#458b74")},
	Theme{ID: "leftPad", Label: "@left_pad", Palette: withGrades(
		Palette{Background: "#000000", Text: "#ffffff", Meta: "#999999"},
		"#2f2f2f", "#646464", "#a5a5a5", "#dddddd", "#f6f6f6")},
	Theme{ID: "dracula", Label: "Dracula", Palette: withGrades(
		Palette{Background: "#181818", Text: "#f8f8f2", Meta: "#6272a4"},
		"#282a36", "#44475a", "#6272a4", "#bd93f9", "#ff79c6")},
	Theme{ID: "blue", Label: "Blue", Palette: withGrades(light, "#eeeeee", "#263342", "#344e6c", "#416895", "#4f83bf")},
	Theme{ID: "panda", Label: "Panda 🐼", Palette: withGrades(
		Palette{Background: "#242526", Text: "#ffffff", Meta: "#999999"},
		"#323232", "#34353b", "#6fc1ff", "#19f9d8", "#ff4b82")},
	Theme{ID: "sunny", Label: "Sunny", Palette: withGrades(light, "#fff9ae", "#f8ed62", "#e9d700", "#dab600", "#a98600")},
	Theme{ID: "pink", Label: "Pink", Palette: withGrades(light, "#ebedf0", "#e48bdc", "#ca5bcc", "#a74aa8", "#61185f")},
	Theme{ID: "YlGnBu", Label: "YlGnBu", Palette: withGrades(light, "#ebedf0", "#a1dab4", "#41b6c4", "#2c7fb8", "#253494")},
)
