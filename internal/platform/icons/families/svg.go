package families

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// openSVG writes the opening <svg> tag. Fixed attributes come first in their
// declared order, then class, then the remaining caller attributes in key
// order. Attribute names compare case-insensitively: a caller attribute
// replaces the fixed one of the same name, and className plus any caller
// class attribute fold into a single class.
func openSVG(ctx context.Context, w io.Writer, fixed templ.OrderedAttributes, className string, attrs templ.Attributes) error {
	if _, err := io.WriteString(w, "<svg"); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, mergeAttributes(fixed, className, attrs)); err != nil {
		return err
	}
	_, err := io.WriteString(w, ">")
	return err
}

// mergeAttributes builds the attribute list openSVG renders. attrs is never
// modified.
func mergeAttributes(fixed templ.OrderedAttributes, className string, attrs templ.Attributes) templ.OrderedAttributes {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	classes := []string{}
	if className = strings.TrimSpace(className); className != "" {
		classes = append(classes, className)
	}

	// Later keys in sorted order win among caller names that differ only by
	// case, so "style" beats "Style".
	callerKeys := map[string]string{}
	for _, key := range keys {
		folded := strings.ToLower(key)
		if folded == "class" {
			if value, ok := classValue(attrs[key]); ok {
				classes = append(classes, value)
			}
			continue
		}
		callerKeys[folded] = key
	}

	merged := make(templ.OrderedAttributes, 0, len(fixed)+len(callerKeys)+1)
	for _, item := range fixed {
		folded := strings.ToLower(item.Key)
		if folded == "class" {
			continue
		}
		if key, ok := callerKeys[folded]; ok {
			merged = append(merged, templ.KeyValue[string, any]{Key: item.Key, Value: attrs[key]})
			delete(callerKeys, folded)
			continue
		}
		merged = append(merged, item)
	}
	if len(classes) > 0 {
		merged = append(merged, templ.KeyValue[string, any]{Key: "class", Value: strings.Join(classes, " ")})
	}
	for _, key := range keys {
		folded := strings.ToLower(key)
		if callerKeys[folded] != key {
			continue
		}
		merged = append(merged, templ.KeyValue[string, any]{Key: key, Value: attrs[key]})
	}
	return merged
}

// classValue reports the text a caller class attribute contributes.
func classValue(value any) (string, bool) {
	var text string
	switch value := value.(type) {
	case nil:
		return "", false
	case string:
		text = value
	case *string:
		if value == nil {
			return "", false
		}
		text = *value
	case bool:
		return "", false
	default:
		text = fmt.Sprint(value)
	}
	text = strings.TrimSpace(text)
	return text, text != ""
}
