package cloneCommand

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/samber/lo"
	"golang.org/x/term"

	"labclone/internal/appConfig"
	"labclone/internal/cloneCommand/terminalView"
	"labclone/internal/ext"
	"labclone/internal/gitlab"
	"labclone/internal/gitrepo"
	logger "labclone/internal/log"
	"labclone/internal/pipe"
	"labclone/internal/progress"
	"labclone/internal/view"
)

// reportReplay collects the per-project report lines while the live
// frame owns the terminal, so the run still leaves a durable
// per-project record once the frame stops.
type reportReplay struct {
	buf bytes.Buffer
}

func (r *reportReplay) Write(p []byte) (int, error) {
	return r.buf.Write(p)
}

func (r *reportReplay) ReplayTo(out io.Writer) {
	_, _ = io.Copy(out, &r.buf)
}

// ExecuteCloneCommand runs one full discovery-and-clone pipeline:
// discovery streams projects and announcements, the dispatcher fans
// clones out over a bounded pool, and the aggregator folds both event
// streams into counters, report lines and the final summary.
func ExecuteCloneCommand(config *appConfig.AppConfig) error {
	startTime := time.Now()

	directory := ext.ExpandTilde(config.Directory)
	if err := os.MkdirAll(directory, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create clone root directory: %w", err)
	}
	method, err := gitrepo.ParseCloneMethod(config.CloneMethod)
	if err != nil {
		return err
	}
	options := gitrepo.RunCloneOptions{
		Directory:   directory,
		CloneMethod: method,
		KeyPath:     ext.ExpandTilde(ext.DefaultValue(config.SSHKeyPath, appConfig.DefaultSSHKeyPath)),
	}

	vm := terminalView.NewCloneViewModel()
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	commandView := terminalView.NewCloneCommandView(vm, startTime, os.Stdout)
	renderCtx, stopRenderLoop := context.WithCancel(context.Background())
	defer stopRenderLoop()
	if isTTY {
		go view.StartTTYRenderLoop(renderCtx, commandView, os.Stdout, os.Stdout)
	}

	logger.Log.Infof("Cloning all projects from %s into %s with %s", config.URL, directory, method)

	projectChannel := make(chan gitlab.Project, gitlab.ProjectChannelBufferSize)
	discoveryActions := make(chan progress.Action, gitlab.ActionChannelBufferSize)
	cloneActions := make(chan progress.Action, gitlab.ActionChannelBufferSize)

	channeledApi := gitlab.NewChanneledApi(gitlab.NewAPIClient(config.ResolveToken(), config.URL))
	discoveryResult := make(chan error, 1)
	go func() {
		discoveryResult <- channeledApi.StreamProjects(projectChannel, discoveryActions)
	}()

	repoChannel := gitlab.ConvertProjectsToRepos(projectChannel, options)
	rateLimited := pipe.RateLimit(repoChannel, config.RateLimitPerSecond, 10)
	go gitrepo.CloneRepositories(context.Background(), rateLimited, cloneActions,
		gitrepo.NewGitMirrorer(options), config.Workers)

	reportOut := io.Writer(os.Stdout)
	var replay *reportReplay
	if isTTY {
		// Per-project lines would fight the render loop; they replay
		// below once it stops.
		replay = &reportReplay{}
		reportOut = replay
	}
	merged := lo.FanIn(gitlab.ActionChannelBufferSize,
		(<-chan progress.Action)(discoveryActions), (<-chan progress.Action)(cloneActions))
	summary := progress.NewAggregator(reportOut, vm.Counts, startTime).Run(merged)

	stopRenderLoop()
	if replay != nil {
		replay.ReplayTo(os.Stdout)
	}

	// Workers and the aggregator have drained by now, so the producer
	// has long since reported.
	if err := <-discoveryResult; err != nil {
		return err
	}

	if !isTTY {
		commandView.Render(80)
	}
	summary.Render(os.Stdout)
	return nil
}
