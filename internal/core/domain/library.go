package domain

// LibraryFolder is a read-only view of one entry of the libraryfolders
// document: a storage root and the applications installed under it.
type LibraryFolder struct {
	// Key is the entry's index key in the document ("0", "1", ...).
	Key string
	// Path is the library root exactly as written in the document.
	Path string
	// Apps is the entry's "apps" object, keyed by application id.
	Apps *Node
}

// HasApp reports whether id is listed under the entry's apps.
func (f LibraryFolder) HasApp(id AppID) bool {
	_, ok := f.Apps.Get(id.String())
	return ok
}

// LibraryFolders derives the library entries of a parsed libraryfolders
// document, in document order. Only object entries carrying both a "path"
// leaf and an "apps" object are returned; anything else under the root key
// (for example "contentstatsid") is skipped.
func LibraryFolders(doc *Node) []LibraryFolder {
	root, ok := doc.Object(LibraryFoldersRootKey)
	if !ok {
		return nil
	}

	var folders []LibraryFolder
	root.Each(func(key string, entry *Node) bool {
		if !entry.IsObject() {
			return true
		}
		apps, ok := entry.Object(LibraryAppsKey)
		if !ok {
			return true
		}
		path, ok := entry.Leaf(LibraryPathKey)
		if !ok {
			return true
		}
		folders = append(folders, LibraryFolder{Key: key, Path: path, Apps: apps})
		return true
	})
	return folders
}
