package javasrc

import (
	"strings"
	"unicode"
)

// Javadoc is a doc comment split into its main description and block tags.
type Javadoc struct {
	Text string
	Tags []Tag
}

// Tag is a block tag such as @param; Value is everything after the tag name.
type Tag struct {
	Name  string
	Value string
}

// TagsByName returns the tags with the given name in source order
func (j *Javadoc) TagsByName(name string) []Tag {
	if j == nil {
		return nil
	}
	var tags []Tag
	for _, tag := range j.Tags {
		if tag.Name == name {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Description returns the main description, empty for a nil comment
func (j *Javadoc) Description() string {
	if j == nil {
		return ""
	}
	return j.Text
}

// ParseJavadoc splits a raw /** ... */ comment. Leading asterisks are stripped
// from every line; a line starting with @ opens a block tag and the lines that
// follow are appended to it until the next tag.
func ParseJavadoc(raw string) *Javadoc {
	body := strings.TrimPrefix(raw, "/**")
	body = strings.TrimSuffix(body, "*/")

	doc := &Javadoc{}
	var description []string
	var current *Tag

	for _, line := range strings.Split(body, "\n") {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimLeftFunc(line, unicode.IsSpace)
		line = strings.TrimLeft(line, "*")
		line = strings.TrimSpace(line)

		if strings.HasPrefix(line, "@") && len(line) > 1 {
			name, value, _ := strings.Cut(line[1:], " ")
			if i := strings.IndexFunc(name, unicode.IsSpace); i >= 0 {
				name, value = name[:i], name[i+1:]+" "+value
			}
			doc.Tags = append(doc.Tags, Tag{Name: name, Value: strings.TrimSpace(value)})
			current = &doc.Tags[len(doc.Tags)-1]
			continue
		}

		if current != nil {
			if line != "" {
				if current.Value == "" {
					current.Value = line
				} else {
					current.Value += "\n" + line
				}
			}
			continue
		}
		description = append(description, line)
	}

	doc.Text = strings.TrimSpace(strings.Join(description, "\n"))
	return doc
}

// lastJavadoc parses the comment closest to a declaration
func lastJavadoc(docs []string) *Javadoc {
	if len(docs) == 0 {
		return nil
	}
	return ParseJavadoc(docs[len(docs)-1])
}
