package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/maxludovicohofer/act-by-belief/brain"
	"github.com/maxludovicohofer/act-by-belief/need"
	"github.com/maxludovicohofer/act-by-belief/react"
)

var (
	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100}
	iters = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkPropagation(true)
	benchmarkDebounce(true)
	benchmarkBrain(true)
}

func benchmarkPropagation(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Belief Propagation")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := react.New(func(s *react.Signal) int {
				return react.SensedOr(s, 1)
			})
			for i := 0; i < w; i++ {
				last := src
				for j := 0; j < h; j++ {
					prev := last
					last = react.New(func(s *react.Signal) int {
						return react.Get(s, prev) + 1
					})
				}
			}

			next := 1
			for i := 0; i < iters; i++ {
				next++
				start := time.Now()
				src.Sense(next)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("sense: %s * %s", humanize.Comma(int64(w)), humanize.Comma(int64(h))),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkDebounce(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Debounced Notification")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sched := react.NewManualScheduler()
		src := react.New(func(s *react.Signal) int {
			return react.SensedOr(s, 1)
		})
		src.SetNotifier(react.Debounced(sched, "src", time.Millisecond))

		for i := 0; i < w; i++ {
			react.New(func(s *react.Signal) int {
				return react.Get(s, src) + 1
			})
		}

		next := 1
		for i := 0; i < iters; i++ {
			next++
			start := time.Now()
			src.Sense(next)
			sched.Advance(time.Millisecond)
			tach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("debounce: %s subscribers", humanize.Comma(int64(w))),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkBrain(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Brain Needs")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	motives := []brain.Motive{
		brain.Survival, brain.Safety, brain.Belonging, brain.Esteem, brain.Purpose,
	}

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})
		viewTach := tachymeter.New(&tachymeter.Config{Size: iters})

		b, err := brain.New(brain.Config{
			Name:      "bench",
			Scheduler: react.NewManualScheduler(),
		})
		if err != nil {
			log.Fatal(err)
		}

		beliefs := make([]*react.Belief[need.Need], 0, w)
		for i := 0; i < w; i++ {
			bel, err := b.Need(
				fmt.Sprintf("need-%d", i),
				react.New(func(s *react.Signal) need.Need {
					return react.SensedOr(s, need.Absent)
				}),
				motives[i%len(motives)],
			)
			if err != nil {
				log.Fatal(err)
			}
			beliefs = append(beliefs, bel)
		}

		for i := 0; i < iters; i++ {
			sensed := need.New(float64(i%100) / 100)
			start := time.Now()
			for _, bel := range beliefs {
				bel.Sense(sensed)
			}
			tach.AddTime(time.Since(start))

			start = time.Now()
			b.View()
			viewTach.AddTime(time.Since(start))
		}

		calc := tach.Calc()
		viewCalc := viewTach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("sense: %s needs", humanize.Comma(int64(w))),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
			{
				fmt.Sprintf("view: %s needs", humanize.Comma(int64(w))),
				viewCalc.Time.Avg,
				viewCalc.Time.Min,
				viewCalc.Time.P75,
				viewCalc.Time.P99,
				viewCalc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}
