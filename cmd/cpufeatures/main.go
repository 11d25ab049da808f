// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command cpufeatures prints the capability set this library detects on
// the running machine, next to the compile-time default and independent
// readings from golang.org/x/sys/cpu and klauspost/cpuid, so mismatches
// between the sources are easy to spot.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	json "github.com/goccy/go-json"
	"github.com/klauspost/cpuid/v2"
	"github.com/urfave/cli/v3"
	"golang.org/x/sys/cpu"

	"github.com/mgood7123/corrade/simd"
)

type report struct {
	GoVersion string          `json:"go_version"`
	GoOS      string          `json:"go_os"`
	GoArch    string          `json:"go_arch"`
	CPUs      int             `json:"cpus"`
	Vendor    string          `json:"vendor,omitempty"`
	Brand     string          `json:"brand,omitempty"`
	Default   string          `json:"default"`
	Detected  string          `json:"detected"`
	RawMask   uint32          `json:"raw_mask"`
	Features  map[string]bool `json:"features"`
}

func main() {
	var (
		packed  bool
		asJSON  bool
		showSys bool
	)

	app := &cli.Command{
		Name:  "cpufeatures",
		Usage: "Report detected SIMD capability levels",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "packed", Usage: "print feature sets without the Simd:: qualifier", Destination: &packed},
			&cli.BoolFlag{Name: "json", Usage: "emit a machine-readable report", Destination: &asJSON},
			&cli.BoolFlag{Name: "sys", Usage: "also list raw golang.org/x/sys/cpu flags", Value: true, Destination: &showSys},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_ = ctx
			if asJSON {
				return printJSON()
			}
			printText(packed, showSys)
			return nil
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func printText(packed, showSys bool) {
	detected := simd.Detect()
	def := simd.Make(simd.Default)

	format := simd.Features.String
	if packed {
		format = simd.Features.Packed
	}

	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	if cpuid.CPU.VendorString != "" {
		fmt.Printf("Vendor: %s\n", cpuid.CPU.VendorString)
	}
	if cpuid.CPU.BrandName != "" {
		fmt.Printf("Brand: %s\n", cpuid.CPU.BrandName)
	}
	fmt.Println()

	fmt.Printf("Compile-time default: %s\n", format(def))
	fmt.Printf("Detected: %s\n", format(detected))
	fmt.Printf("Raw mask: %#x\n", uint32(detected))

	if !showSys {
		return
	}
	fmt.Println()
	switch runtime.GOARCH {
	case "amd64":
		printAMD64Features()
	case "arm64":
		printARM64Features()
	}
}

func printJSON() error {
	detected := simd.Detect()

	out := report{
		GoVersion: runtime.Version(),
		GoOS:      runtime.GOOS,
		GoArch:    runtime.GOARCH,
		CPUs:      runtime.NumCPU(),
		Vendor:    cpuid.CPU.VendorString,
		Brand:     cpuid.CPU.BrandName,
		Default:   simd.Make(simd.Default).Packed(),
		Detected:  detected.Packed(),
		RawMask:   uint32(detected),
		Features:  featureMap(detected),
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE3:    %v\n", cpu.X86.HasSSE3)
	fmt.Printf("  HasSSSE3:   %v\n", cpu.X86.HasSSSE3)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
	fmt.Printf("  HasSSE42:   %v\n", cpu.X86.HasSSE42)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasAVX512F: %v\n", cpu.X86.HasAVX512F)
	fmt.Printf("  HasOSXSAVE: %v\n", cpu.X86.HasOSXSAVE)
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasASIMDFHM: %v (FP16 FMA, ARMv8.4-A)\n", cpu.ARM64.HasASIMDFHM)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Printf("  HasCRC32:    %v\n", cpu.ARM64.HasCRC32)
	fmt.Printf("  HasATOMICS:  %v (Large System Extensions)\n", cpu.ARM64.HasATOMICS)
}
