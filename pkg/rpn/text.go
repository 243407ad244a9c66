package rpn

import (
	"bufio"
	"strconv"
	"strings"
)

// ParseProgram scans postfix text like "3 4 +" back into a Program. Words
// that read as signed 64-bit integers become Push instructions; every other
// word is an Apply. It inverts Program.String exactly, so a program
// rendered and re-parsed is the same program.
func ParseProgram(s string) (Program, error) {
	var prog Program
	scanner := bufio.NewScanner(strings.NewReader(s))
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		word := scanner.Text()
		if v, err := strconv.ParseInt(word, 10, 64); err == nil {
			prog = append(prog, Instruction{Op: Push, Val: v})
			continue
		}
		prog = append(prog, Instruction{Op: Apply, Sym: word})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return prog, nil
}
