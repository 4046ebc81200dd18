package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

// maxKeyPad caps the alignment column so one huge key doesn't
// shove every value off the screen
const maxKeyPad = 50

func Color(w io.Writer) aurora.Aurora {
	return aurora.NewAurora(SupportsANSICodes())
}

func Bold(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Bold(text))
}

func RedText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Red(text))
}

func GreenText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Green(text))
}

func BlueText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Blue(text))
}

func MagentaText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Magenta(text))
}

func YellowText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Yellow(text))
}

func GrayText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Gray(12, text))
}

// KeyValues renders a map as aligned "key: value" lines, keys sorted
func KeyValues(kv map[string]string) string {
	if len(kv) == 0 {
		return ""
	}

	keys := make([]string, 0, len(kv))
	longest := 0
	for k := range kv {
		keys = append(keys, k)
		if len(k) > longest {
			longest = len(k)
		}
	}
	sort.Strings(keys)

	if longest > maxKeyPad {
		longest = maxKeyPad
	}

	var sb strings.Builder
	for _, k := range keys {
		sb.WriteString(fmt.Sprintf("%-*s %s\n", longest+1, k+":", kv[k]))
	}
	return sb.String()
}

func UnorderedList(items []string) string {
	var sb strings.Builder
	for _, item := range items {
		sb.WriteString(fmt.Sprintf("- %s\n", item))
	}
	return sb.String()
}

func OrderedList(items []string) string {
	var sb strings.Builder
	for i, item := range items {
		sb.WriteString(fmt.Sprintf("%d) %s\n", i+1, item))
	}
	return sb.String()
}

// Truncate shortens text to roughly maxLen runes, eliding the middle
func Truncate(text string, maxLen int) string {
	if len(text) <= maxLen {
		return text
	}

	keep := maxLen - 3
	if keep < 2 {
		keep = 2
	}
	front := keep - keep/2
	back := keep / 2

	return text[:front] + "..." + text[len(text)-back:]
}

// Paragraph greedily wraps text at 60 columns
func Paragraph(text string) string {
	const width = 60

	var sb strings.Builder
	line := ""
	for _, word := range strings.Fields(text) {
		if line == "" {
			line = word
			continue
		}
		if len(line)+1+len(word) > width {
			sb.WriteString(line + "\n")
			line = word
			continue
		}
		line += " " + word
	}
	if line != "" {
		sb.WriteString(line + "\n")
	}
	return sb.String()
}

func PrefixLines(text string, prefix string) string {
	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(prefix + line + "\n")
	}
	return sb.String()
}
