// Package shell generates the per-shell integration snippets. The
// binary prints a selected path on stdout; only a shell function in the
// parent process can actually change its working directory, so each
// snippet wraps the binary and cd's to whatever it printed.
package shell

import (
	"errors"
	"fmt"
)

// ErrUnsupportedShell is returned for shells without an integration
// snippet.
var ErrUnsupportedShell = errors.New("unsupported shell")

// Supported lists the shells InitScript accepts.
func Supported() []string {
	return []string{"zsh", "bash", "fish", "nu"}
}

// InitScript returns the integration snippet for the given shell.
// "nushell" is accepted as an alias for "nu".
func InitScript(shell string) (string, error) {
	switch shell {
	case "zsh":
		return zshScript, nil
	case "bash":
		return bashScript, nil
	case "fish":
		return fishScript, nil
	case "nu", "nushell":
		return nuScript, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedShell, shell)
	}
}

const zshScript = `# gn shell integration for zsh
# Add this to your ~/.zshrc:
#   eval "$(gn init zsh)"

gn() {
  local result
  result=$(command gn "$@")

  if [[ -n "$result" ]] && [[ -d "$result" ]]; then
    cd "$result" || return 1
  fi
}
`

const bashScript = `# gn shell integration for bash
# Add this to your ~/.bashrc:
#   eval "$(gn init bash)"

gn() {
  local result
  result=$(command gn "$@")

  if [[ -n "$result" ]] && [[ -d "$result" ]]; then
    cd "$result" || return 1
  fi
}
`

const fishScript = `# gn shell integration for fish
# Add this to your ~/.config/fish/config.fish:
#   gn init fish | source

function gn
  set result (command gn $argv)

  if test -n "$result" -a -d "$result"
    cd "$result"; or return 1
  end
end
`

const nuScript = `# gn shell integration for nushell
# Add this to your nushell config (typically ~/.config/nushell/config.nu):
#   gn init nu | save --force ~/.cache/gn/init.nu
#   source ~/.cache/gn/init.nu

def --env gn [...args] {
  let result = (^gn ...$args | str trim)

  if ($result != "") and ($result | path exists) {
    cd $result
  }
}
`
