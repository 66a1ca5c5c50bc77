// Package scene maintains the registry of named sketch animation scenes and
// resolves abbreviated scene, file and path references against it.
//
// Scenes register a name, the source file they live in, and a build
// function that constructs their animation timeline. The build command
// selects scenes the way the original sketch build tool does: by path, by
// file and by scene name, each resolved with fuzzy matching so "coinLi"
// selects the CoincidentLine scene.
package scene
