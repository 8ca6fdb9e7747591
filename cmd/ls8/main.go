// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
)

func main() {
	var assemble bool
	var save string
	var output string
	var verbose bool
	var legacyRet bool

	flag.BoolVar(&assemble, "a", false, "Assemble the program from mnemonic source")
	flag.StringVar(&save, "s", "", "Save the program in binary text form, do not execute")
	flag.StringVar(&output, "o", "-", "PRN output")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.BoolVar(&legacyRet, "legacy-ret", false, "RET rewrites the stack cell instead of popping it")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] filename\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	filename := flag.Arg(0)

	inf, err := os.Open(filename)
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}
	defer inf.Close()

	emu := emulator.NewEmulator()
	emu.Verbose = verbose
	emu.LegacyRet = legacyRet

	if assemble {
		asm := &cpu.Assembler{Verbose: verbose}
		for name, value := range emu.Defines() {
			asm.Predefine(name, value)
		}
		emu.Program, err = asm.Parse(inf)
	} else {
		emu.Program, err = cpu.Load(inf)
	}
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	if len(save) != 0 {
		ouf, err := os.Create(save)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		defer ouf.Close()

		err = emu.Program.WriteText(ouf)
		if err != nil {
			log.Fatalf("%v: %v", save, err)
		}
		return
	}

	if output == "-" {
		emu.Tape.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Tape.Output = ouf
	}

	err = emu.Reset()
	if err != nil {
		log.Fatalf("%v: %v", filename, err)
	}

	// Any runtime fault, an unknown opcode included, ends the process
	// with status 1 on the spot.
	for done, err := emu.Tick(); !done; done, err = emu.Tick() {
		if err != nil {
			log.Fatal(err)
		}
	}
}
