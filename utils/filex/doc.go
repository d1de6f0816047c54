/*
Package filex provides the file access used by extkit: existence checks and
whole-file reads and writes.

Read functions return a NOT_FOUND *error.Error when the path does not exist
and an INTERNAL error wrapping the os error for any other failure:

	content, err := filex.ReadString("people.csv")
	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		// report the missing file
	}

File handles are closed on every return path.
*/
package filex
