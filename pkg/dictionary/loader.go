package dictionary

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"
)

// maxBinaryEntries bounds the header of a binary word list.
const maxBinaryEntries = 10_000_000

// LoadFile reads a word list from path, picking the reader from the detected
// file format.
func LoadFile(path string) ([]WordFrequency, error) {
	format, err := DetectFileFormat(path)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open word list %s: %w", path, err)
	}
	defer file.Close()

	var entries []WordFrequency
	switch format {
	case FormatBinary:
		entries, err = ReadBinary(bufio.NewReader(file))
	default:
		entries, err = ReadText(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	if info, ok := GetFormatInfo(format); ok {
		log.Debugf("Loaded %d entries from %s (%s)", len(entries), path, info.Description)
	}
	return entries, nil
}

// ReadText parses one "word frequency" pair per line. Blank lines and lines
// starting with # are skipped; a word without frequency gets 1.
func ReadText(r io.Reader) ([]WordFrequency, error) {
	scanner := bufio.NewScanner(r)
	var entries []WordFrequency
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) > 2 {
			return nil, fmt.Errorf("line %d: expected \"word frequency\", got %q", lineNum, line)
		}
		freq := 1
		if len(parts) == 2 {
			f, err := strconv.Atoi(parts[1])
			if err != nil || f < 0 {
				return nil, fmt.Errorf("line %d: invalid frequency %q", lineNum, parts[1])
			}
			freq = f
		}
		if err := ValidateWord(parts[0]); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		entries = append(entries, WordFrequency{Word: parts[0], Frequency: freq})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading word list: %w", err)
	}
	return entries, nil
}

// ReadBinary decodes the binary word list: an int32 entry count, then per
// entry a uint16 word length, the word bytes and a uint32 frequency, all
// little-endian.
func ReadBinary(r io.Reader) ([]WordFrequency, error) {
	var total int32
	if err := binary.Read(r, binary.LittleEndian, &total); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if total < 0 || total > maxBinaryEntries {
		return nil, fmt.Errorf("invalid entry count %d", total)
	}

	entries := make([]WordFrequency, 0, total)
	for i := 0; i < int(total); i++ {
		var wordLen uint16
		if err := binary.Read(r, binary.LittleEndian, &wordLen); err != nil {
			return nil, fmt.Errorf("entry %d: failed to read word length: %w", i, err)
		}
		wordBytes := make([]byte, wordLen)
		if _, err := io.ReadFull(r, wordBytes); err != nil {
			return nil, fmt.Errorf("entry %d: failed to read word: %w", i, err)
		}
		var freq uint32
		if err := binary.Read(r, binary.LittleEndian, &freq); err != nil {
			return nil, fmt.Errorf("entry %d: failed to read frequency: %w", i, err)
		}
		if !utf8.Valid(wordBytes) {
			return nil, fmt.Errorf("entry %d: %w: %q", i, ErrInvalidWord, wordBytes)
		}
		entries = append(entries, WordFrequency{Word: string(wordBytes), Frequency: int(freq)})
	}
	return entries, nil
}

// WriteBinary encodes entries in the format ReadBinary expects.
func WriteBinary(w io.Writer, entries []WordFrequency) error {
	if len(entries) > maxBinaryEntries {
		return fmt.Errorf("too many entries: %d", len(entries))
	}
	// nothing is written unless every entry fits
	if err := ValidateEntries(entries); err != nil {
		return err
	}
	for i, wf := range entries {
		if len(wf.Word) > math.MaxUint16 || uint64(wf.Frequency) > math.MaxUint32 {
			return fmt.Errorf("entry %d: %s does not fit the binary format", i, wf)
		}
	}

	if err := binary.Write(w, binary.LittleEndian, int32(len(entries))); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, wf := range entries {
		if err := binary.Write(w, binary.LittleEndian, uint16(len(wf.Word))); err != nil {
			return err
		}
		if _, err := io.WriteString(w, wf.Word); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, uint32(wf.Frequency)); err != nil {
			return err
		}
	}
	return nil
}
