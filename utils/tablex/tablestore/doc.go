/*
Package tablestore persists named snapshots of tablex tables in SQLite.

	store, err := tablestore.Open(ctx, tablestore.Config{Path: "data/tables.db"})
	if err != nil {
		return err
	}
	defer store.Close()

	id, err := store.Save(ctx, "people", table)
	loaded, err := store.Load(ctx, "people")

A snapshot keeps column order, descriptions and the kind of every cell, so an
int column loads back as ints, unlike a CSV round trip. Saving under an
existing name replaces that snapshot. Load of an unknown name returns a
NOT_FOUND error; database failures are DATABASE_ERROR errors.

The database runs in WAL mode on a single connection.
*/
package tablestore
