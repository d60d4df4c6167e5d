// Package model holds the descriptor tree handed to generators: a TemplateSuite of
// TemplateClass values, each owning one TemplateMethod and its TemplateParameter list.
//
// The tree is built once by the extractor and treated as read-only afterwards.
package model
