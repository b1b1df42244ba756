// Package paths resolves the directories a dotlink run works between.
//
// Two roots are resolved once at the start of a run and then passed
// explicitly to the linker:
//
//   - Install directory: the directory containing the dotlink executable.
//     Shared sources (.zshrc, .zsh_history) live directly in it and each
//     profile has a subdirectory of its own.
//   - Home directory: the invoking user's home, taken from $HOME.
//
// Neither root is configurable. Tests construct Paths directly with New.
//
// Source paths are built with JoinVerbatim, which keeps the profile segment
// exactly as given. A profile such as "../shared" therefore points outside
// the install directory; callers decide whether to warn about that.
//
// The log file lives under the XDG state directory (see LogFilePath).
package paths
