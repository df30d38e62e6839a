package main

import (
	"encoding/json"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli"

	"github.com/mrzor/procshim/internal/host"
)

type processInfo struct {
	Arch     string            `json:"arch"`
	Platform string            `json:"platform"`
	Version  string            `json:"version"`
	Versions map[string]string `json:"versions"`
	Pid      int               `json:"pid"`
	Ppid     int               `json:"ppid"`
	Kernel   string            `json:"kernel_release,omitempty"`
	Cwd      string            `json:"cwd"`
	EnvCount int               `json:"env_count"`
	EnvSize  string            `json:"env_size"`
}

var infoCommand = cli.Command{
	Name:  "info",
	Usage: "show arch, platform, versions, pids, kernel release and working directory",
	Description: `Show the process identity as JSON.
   env_size is the total size of the environment in KEY=value form.`,
	Action: func(context *cli.Context) error {
		if err := checkArgs(context, 0, exactArgs); err != nil {
			return err
		}
		p := getProcess(context)

		cwd, err := p.Cwd()
		if err != nil {
			return err
		}
		env, err := p.Env()
		if err != nil {
			return err
		}

		kernel, err := host.KernelRelease()
		if err != nil {
			return err
		}

		var size uint64
		for k, v := range env {
			size += uint64(len(k) + len(v) + 1)
		}

		info := processInfo{
			Arch:     p.Arch(),
			Platform: p.Platform(),
			Version:  p.Version(),
			Versions: p.Versions(),
			Pid:      p.Pid(),
			Ppid:     p.Ppid(),
			Kernel:   kernel,
			Cwd:      cwd,
			EnvCount: len(env),
			EnvSize:  humanize.Bytes(size),
		}

		enc := json.NewEncoder(context.App.Writer)
		enc.SetIndent("", "    ")
		return enc.Encode(info)
	},
}
