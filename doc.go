// Package prizm writes OBJ files carrying debug annotations for the prizm
// viewer.
//
// The viewer reads a superset of OBJ: text after the first # on a line is an
// annotation string attached to the record or element on that line, text
// after a second # is ignored, @ prefixes typed attributes inside an
// annotation, and lines starting with #! are commands run after the file
// loads. Files written with this package still open in ordinary OBJ viewers.
//
//	obj := prizm.NewObj()
//	obj.Triangle3(prizm.V3(0, 0, 0), prizm.V3(1, 0, 0), prizm.V3(0, 1, 0)).An("first triangle")
//	obj.SetAnnotationsVisible(true)
//	err := obj.WriteFile("debug.obj")
//
// By default elements reference records with negative (relative) indices so
// objs can be concatenated with Append.
package prizm
