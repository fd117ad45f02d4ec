// Package editor is the editing session the command layer drives.
//
// It ties a buffer, its selection set, the undo history and the clipboard
// facade together: every command turns the selections into edits, applies
// them right to left, remaps every selection through every edit, and
// records the whole command as one undo group.
package editor
