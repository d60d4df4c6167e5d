// Package javasrc reads Java compilation units far enough to recover the
// declarations a code generator cares about: classes, method signatures,
// parameter annotations and Javadoc. Expressions and statements are skipped.
//
// Units are added to a Library, which resolves simple type names against
// imports, enclosing classes and the other units it holds.
package javasrc
