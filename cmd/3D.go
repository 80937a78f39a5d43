/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bufio"
	"fmt"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/notargets/gopic/InputParameters"
	"github.com/notargets/gopic/model_problems/Electrostatic3D"
)

type Model3D struct {
	ICFile   string
	DumpFile string
	Steps    int
	Verify   bool
	Profile  bool
}

const exampleFile = `
########################################
Title: "Point Charge"
Size: [1.0, 1.0, 1.0]
Cells: [3, 3, 3]
Steps: 10
Omega: 1.4
Tolerance: 1.0e-5
MaxIterations: 10000
CheckInterval: 25
Ordering: lexicographic # Can be "red-black"
ChargeRegions:
  - Min: [0.4, 0.4, 0.4]
    Max: [0.6, 0.6, 0.6]
    Density: 1.0e-12
########################################
`

// ThreeDCmd represents the 3D command
var ThreeDCmd = &cobra.Command{
	Use:   "3D",
	Short: "Three dimensional electrostatic field solve on a uniform grid",
	Long: `
Deposits the charge regions of an input deck and updates the potential and
electric field for a number of steps,

gopic 3D -I deck.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
			ip  *InputParameters.InputParameters3D
		)
		fmt.Println("3D called")
		m3d := &Model3D{
			ICFile:   viper.GetString("inputConditionsFile"),
			DumpFile: viper.GetString("dumpFile"),
			Steps:    viper.GetInt("steps"),
			Verify:   viper.GetBool("verify"),
			Profile:  viper.GetBool("profile"),
		}
		if ip, err = processInput3D(m3d); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		if m3d.Profile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		if err = Run3D(m3d, ip); err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(ThreeDCmd)
	ThreeDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML file for input parameters like:\n\t- Size, Cells\n\t- Omega, Tolerance\n\t- ChargeRegions")
	ThreeDCmd.Flags().StringP("dumpFile", "o", "", "file to write the final potential and electric field to")
	ThreeDCmd.Flags().IntP("steps", "s", 0, "number of field updates, overrides the input file")
	ThreeDCmd.Flags().BoolP("verify", "v", false, "recompute the final residual through the assembled sparse operator")
	ThreeDCmd.Flags().BoolP("profile", "p", false, "write a CPU profile to the current directory")
	for _, name := range []string{"inputConditionsFile", "dumpFile", "steps", "verify", "profile"} {
		if err := viper.BindPFlag(name, ThreeDCmd.Flags().Lookup(name)); err != nil {
			panic(err)
		}
	}
}

func processInput3D(m3d *Model3D) (ip *InputParameters.InputParameters3D, err error) {
	var data []byte
	if len(m3d.ICFile) == 0 {
		err = fmt.Errorf("must supply an input parameters file (-I, --inputConditionsFile) in YAML format")
		return
	}
	if data, err = os.ReadFile(m3d.ICFile); err != nil {
		return
	}
	ip = &InputParameters.InputParameters3D{}
	if err = ip.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", m3d.ICFile, err)
	}
	if m3d.Steps > 0 {
		ip.Steps = m3d.Steps
	}
	return
}

func Run3D(m3d *Model3D, ip *InputParameters.InputParameters3D) (err error) {
	var m *Electrostatic3D.Model
	ip.Print()
	if m, err = Electrostatic3D.NewModel(ip); err != nil {
		return
	}
	if err = m.Run(); err != nil {
		return
	}
	if m3d.Verify {
		fmt.Printf("Residual: sweep = %10.4e, sparse operator = %10.4e\n",
			m.ES.ResidualNorm(), m.ES.SparseResidualNorm())
	}
	if len(m3d.DumpFile) != 0 {
		var f *os.File
		if f, err = os.Create(m3d.DumpFile); err != nil {
			return
		}
		defer f.Close()
		w := bufio.NewWriter(f)
		if err = m.Dump(w); err != nil {
			return
		}
		err = w.Flush()
	}
	return
}
