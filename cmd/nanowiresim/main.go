// Command nanowiresim drives a nanowire network simulation from the
// command line: generate geometry, build a network, attach a driving
// node, and run a fixed number of stimulation steps, printing node
// voltages after each one. It mirrors toy-spice/cmd/main.go's
// flag-driven, log.Fatalf-on-error shape.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/memristive/nanowire-net/pkg/datasheet"
	"github.com/memristive/nanowire-net/pkg/persist"
	"github.com/memristive/nanowire-net/pkg/recorder"
	"github.com/memristive/nanowire-net/pkg/simulator"
	"github.com/memristive/nanowire-net/pkg/util"
)

func printVoltages(step int, t float64, voltages []float64) {
	fmt.Printf("step %3d  t=%s  ", step, util.FormatValueFactor(t, "s"))
	for i, v := range voltages {
		fmt.Printf("V[%d]=%s  ", i, util.FormatValueFactor(v, "V"))
	}
	fmt.Println()
}

func main() {
	datasheetFile := flag.String("datasheet", "", "load datasheet parameters from a JSON file instead of the defaults (-wires and -seed still override it)")
	wiresCount := flag.Int("wires", 0, "override wire count (0 keeps the datasheet's own value)")
	seed := flag.Int64("seed", 0, "geometry RNG seed (0 keeps the datasheet's own value)")
	deviceGrounds := flag.Int("grounds", 1, "number of wires designated device grounds")
	inputNode := flag.Int("input", 0, "wire index driven by the input voltage")
	inputVoltage := flag.Float64("voltage", 5.0, "constant voltage applied to -input")
	steps := flag.Int("steps", 10, "number of stimulation steps to run")
	dt := flag.Float64("dt", 0.05, "timestep between stimulations")
	out := flag.String("out", "", "write a network snapshot (JSON) to this path after the run")
	flag.Parse()

	ds := datasheet.Default()
	if *datasheetFile != "" {
		data, err := os.ReadFile(*datasheetFile)
		if err != nil {
			log.Fatalf("reading datasheet file: %v", err)
		}
		var doc persist.DatasheetDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			log.Fatalf("parsing datasheet file: %v", err)
		}
		ds = doc.Decode()
	}
	if *wiresCount > 0 {
		ds.WiresCount = *wiresCount
	}
	if *seed != 0 {
		ds.Seed = *seed
	}
	if err := ds.Validate(); err != nil {
		log.Fatalf("invalid datasheet: %v", err)
	}

	fmt.Printf("generating geometry: %d wires, seed=%d\n", ds.WiresCount, ds.Seed)
	geom, err := simulator.GenerateGeometry(ds, ds.Seed)
	if err != nil {
		log.Fatalf("generating geometry: %v", err)
	}
	fmt.Printf("retained %d wires after largest-component reduction\n", geom.N())

	net, err := simulator.BuildNetwork(ds, geom, ds.InitialConductance(), *deviceGrounds)
	if err != nil {
		log.Fatalf("building network: %v", err)
	}

	if *inputNode < 0 || *inputNode >= net.Wires() {
		log.Fatalf("input node %d out of range [0, %d)", *inputNode, net.Wires())
	}

	rec := recorder.New(net.Nodes())
	inputs := map[int]float64{*inputNode: *inputVoltage}

	for step := 0; step < *steps; step++ {
		t := float64(step) * *dt
		if err := simulator.Stimulate(net, ds, *dt, inputs); err != nil {
			log.Fatalf("stimulating at step %d: %v", step, err)
		}
		if err := rec.Record(t, net); err != nil {
			log.Fatalf("recording step %d: %v", step, err)
		}
		printVoltages(step, t, net.V)
	}

	if *out != "" {
		writeJSON(*out, persist.EncodeNetwork(net))
		writeJSON(*out+".wires.json", persist.EncodeGeometry(geom, ds))

		conns := persist.ConnectionsDocument{"in": *inputNode}
		connData, err := persist.MarshalConnections(conns)
		if err != nil {
			log.Fatalf("encoding connections: %v", err)
		}
		if err := os.WriteFile(*out+".connections.json", connData, 0o644); err != nil {
			log.Fatalf("writing connections: %v", err)
		}

		fmt.Printf("wrote snapshot, wires and connections alongside %s\n", *out)
	}

	printSummary(rec, net.Nodes())
}

func writeJSON(path string, doc any) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Fatalf("encoding %s: %v", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("writing %s: %v", path, err)
	}
}

func printSummary(rec *recorder.Recorder, nodes int) {
	fmt.Println("\nrecorded node series:")
	indices := make([]int, nodes)
	for i := range indices {
		indices[i] = i
	}
	sort.Ints(indices)
	for _, i := range indices {
		series, err := rec.NodeVoltageSeries(i)
		if err != nil {
			continue
		}
		formatted := make([]string, len(series))
		for k, v := range series {
			formatted[k] = util.FormatValueFactor(v, "V")
		}
		fmt.Printf("node %d: %v\n", i, formatted)
	}
}
