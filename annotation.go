package prizm

//
// Annotations.
//
// The viewer stores the text between the first # and a newline or second #
// as the line's annotation string and can show it in the viewport.
//

// Annotation starts an annotation if the line has none, then inserts v.
// Calling it again on the same line extends the same annotation string.
// Annotation("") only ensures the annotation is started.
func (o *Obj) Annotation(v any) *Obj {
	if o.hashCount == 0 {
		// the space helps viewers that fail on numbers not delimited by whitespace
		o.Space().Hash()
	}
	return o.Insert(v)
}

// An writes the annotation v and ends the line. An("") only ends the line.
func (o *Obj) An(v any) *Obj {
	if v == nil || v == "" {
		return o.Newline()
	}
	return o.Annotation(v).Newline()
}

// Attribute adds v, prefixed by @, to the current annotation string,
// starting one if needed. Attributes accumulate left to right.
func (o *Obj) Attribute(v any) *Obj {
	return o.Annotation("").Space().At().Insert(v)
}

//
// Comments. The viewer ignores any text after the second # on a line.
//

// Comment makes sure the line has two # characters then inserts v.
func (o *Obj) Comment(v any) *Obj {
	for o.hashCount < 2 {
		o.Hash()
	}
	return o.Insert(v)
}
