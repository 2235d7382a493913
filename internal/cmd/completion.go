package cmd

import (
	"fmt"
)

type CompletionCmd struct {
	Shell string `arg:"" help:"Shell type: bash, zsh, or fish"`
}

func (c *CompletionCmd) Run() error {
	switch c.Shell {
	case "bash":
		return c.generateBash()
	case "zsh":
		return c.generateZsh()
	case "fish":
		return c.generateFish()
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", c.Shell)
	}
}

func (c *CompletionCmd) generateBash() error {
	script := `# bash completion for blender2gazebo

_blender2gazebo_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main commands
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        opts="export inspect completion version"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    # Options for export command
    if [[ ${COMP_WORDS[1]} == "export" ]]; then
        case "${prev}" in
            -o|--output)
                COMPREPLY=( $(compgen -d -- ${cur}) )
                return 0
                ;;
            --log-level)
                COMPREPLY=( $(compgen -W "debug info warn error" -- ${cur}) )
                return 0
                ;;
            --log-file)
                COMPREPLY=( $(compgen -f -- ${cur}) )
                return 0
                ;;
            *)
                if [[ ${cur} == -* ]]; then
                    opts="-o --output -v --verbose --log-level --log-file -h --help"
                    COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
                else
                    COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
                fi
                return 0
                ;;
        esac
    fi

    # Options for inspect command
    if [[ ${COMP_WORDS[1]} == "inspect" ]]; then
        if [[ ${cur} == -* ]]; then
            opts="--raw -h --help"
            COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        else
            COMPREPLY=( $(compgen -f -X '!*.sdf' -- ${cur}) )
        fi
        return 0
    fi

    # Options for completion command
    if [[ ${COMP_WORDS[1]} == "completion" ]]; then
        if [[ ${COMP_CWORD} -eq 2 ]]; then
            COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
        fi
        return 0
    fi
}

complete -F _blender2gazebo_completions blender2gazebo
`
	fmt.Print(script)
	return nil
}

func (c *CompletionCmd) generateZsh() error {
	script := `#compdef blender2gazebo

_blender2gazebo() {
    local -a commands
    commands=(
        'export:Export a scene description to a Gazebo model bundle'
        'inspect:Inspect a generated model.sdf'
        'completion:Generate shell completion scripts'
        'version:Show version information'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case ${words[2]} in
        export)
            _arguments \
                '(-o --output)'{-o,--output}'[Output model directory]:directory:_directories' \
                '(-v --verbose)'{-v,--verbose}'[Verbose step output]' \
                '--log-level[Log level]:level:(debug info warn error)' \
                '--log-file[Log file]:file:_files' \
                '*:scene file:_files -g "*.(yaml|yml)"'
            ;;
        inspect)
            _arguments \
                '--raw[Print the syntax-highlighted XML]' \
                '*:sdf file:_files -g "*.sdf"'
            ;;
        completion)
            _arguments '1:shell:(bash zsh fish)'
            ;;
    esac
}

_blender2gazebo "$@"
`
	fmt.Print(script)
	return nil
}

func (c *CompletionCmd) generateFish() error {
	script := `# fish completion for blender2gazebo

complete -c blender2gazebo -f
complete -c blender2gazebo -n '__fish_use_subcommand' -a export -d 'Export a scene description to a Gazebo model bundle'
complete -c blender2gazebo -n '__fish_use_subcommand' -a inspect -d 'Inspect a generated model.sdf'
complete -c blender2gazebo -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c blender2gazebo -n '__fish_use_subcommand' -a version -d 'Show version information'

complete -c blender2gazebo -n '__fish_seen_subcommand_from export' -s o -l output -d 'Output model directory' -r -a '(__fish_complete_directories)'
complete -c blender2gazebo -n '__fish_seen_subcommand_from export' -s v -l verbose -d 'Verbose step output'
complete -c blender2gazebo -n '__fish_seen_subcommand_from export' -l log-level -d 'Log level' -r -a 'debug info warn error'
complete -c blender2gazebo -n '__fish_seen_subcommand_from export' -l log-file -d 'Log file' -r
complete -c blender2gazebo -n '__fish_seen_subcommand_from export' -k -a '(__fish_complete_suffix .yaml .yml)'

complete -c blender2gazebo -n '__fish_seen_subcommand_from inspect' -l raw -d 'Print the syntax-highlighted XML'
complete -c blender2gazebo -n '__fish_seen_subcommand_from inspect' -k -a '(__fish_complete_suffix .sdf)'

complete -c blender2gazebo -n '__fish_seen_subcommand_from completion' -a 'bash zsh fish'
`
	fmt.Print(script)
	return nil
}

// Help returns usage examples for installing the completions
func (c *CompletionCmd) Help() string {
	return `
Install the completions:

  bash:  blender2gazebo completion bash > /etc/bash_completion.d/blender2gazebo
  zsh:   blender2gazebo completion zsh > "${fpath[1]}/_blender2gazebo"
  fish:  blender2gazebo completion fish > ~/.config/fish/completions/blender2gazebo.fish
`
}
