package fastaio

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// ErrMalformedRecord indicates a FASTA/FASTQ record whose framing (a
// missing header, or a FASTQ quality line of the wrong length) does not
// match the format.
var ErrMalformedRecord = errors.New("fastaio: malformed record")

// Record is one FASTA entry: an identifier line (without the leading '>')
// and the concatenated sequence that follows it.
type Record struct {
	ID       string
	Sequence string
}

// ReadSequences parses FASTA records from r, in order.
func ReadSequences(r io.Reader) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var records []Record
	var cur *Record
	var body strings.Builder

	flush := func() {
		if cur != nil {
			cur.Sequence = body.String()
			records = append(records, *cur)
			body.Reset()
		}
	}

	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, ">") {
			flush()
			cur = &Record{ID: strings.TrimPrefix(line, ">")}
			continue
		}
		if cur == nil {
			return nil, ErrMalformedRecord
		}
		body.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	return records, nil
}

// FastqRecord is one FASTQ entry: an identifier, the sequence, and its
// per-base PHRED-encoded quality string (equal length to Sequence).
type FastqRecord struct {
	ID       string
	Sequence string
	Quality  string
}

// ReadFastq parses FASTQ records from r, in order. Each record must occupy
// exactly four lines: '@id', sequence, '+' (optionally repeating the id),
// and a quality string of the same length as the sequence.
func ReadFastq(r io.Reader) ([]FastqRecord, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var records []FastqRecord
	for {
		header, ok := nextNonEmpty(scanner)
		if !ok {
			break
		}
		if !strings.HasPrefix(header, "@") {
			return nil, ErrMalformedRecord
		}
		seqLine, ok := nextNonEmpty(scanner)
		if !ok {
			return nil, ErrMalformedRecord
		}
		plusLine, ok := nextNonEmpty(scanner)
		if !ok || !strings.HasPrefix(plusLine, "+") {
			return nil, ErrMalformedRecord
		}
		qualLine, ok := nextNonEmpty(scanner)
		if !ok || len(qualLine) != len(seqLine) {
			return nil, ErrMalformedRecord
		}
		records = append(records, FastqRecord{
			ID:       strings.TrimPrefix(header, "@"),
			Sequence: seqLine,
			Quality:  qualLine,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

func nextNonEmpty(scanner *bufio.Scanner) (string, bool) {
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line != "" {
			return line, true
		}
	}
	return "", false
}
