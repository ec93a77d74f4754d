package docmodel

import "strings"

// Default style values.
const (
	DefaultBarColor     = "w3-blue"
	DefaultTitleColor   = "w3-black"
	DefaultHeadingColor = "w3-text-blue"
	DefaultLogo         = `![Home](gomdoc_home.png "w3-round")`
)

// HeadingColorFor derives a heading color from a bar color,
// "w3-red" becoming "w3-text-red".
func HeadingColorFor(bar string) string {
	return "w3-text-" + strings.TrimPrefix(bar, "w3-")
}

// StyleFor resolves the style of section: each field comes from the section,
// then from the main page, then from the defaults. section may be nil.
func (d *Document) StyleFor(section *Section) Style {
	var own, main Style
	if section != nil {
		own = section.Style
	}
	if d.MainPage != nil {
		main = d.MainPage.Style
	}

	return Style{
		BarColor:     pick(own.BarColor, main.BarColor, DefaultBarColor),
		TitleColor:   pick(own.TitleColor, main.TitleColor, DefaultTitleColor),
		HeadingColor: pick(own.HeadingColor, main.HeadingColor, DefaultHeadingColor),
		FontBody:     pick(own.FontBody, main.FontBody, ""),
		FontHeadings: pick(own.FontHeadings, main.FontHeadings, ""),
		Logo:         pick(own.Logo, main.Logo, DefaultLogo),
		Version:      pick(own.Version, main.Version, ""),
	}
}

func pick(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
