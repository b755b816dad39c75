// 19 Oct 2026

/*
Fqtools filters fastq files and does a few other small jobs on sequence
files.

Usage:
	fqtools filter [flags] input.fastq
	fqtools stats [flags] input.fastq [output.csv]
	fqtools na command sequence [sequence ...]
	fqtools prot command sequence [sequence ...]
	fqtools oneline input.fasta [output]
	fqtools rand [flags]

filter keeps reads whose GC content, length and mean quality are within
limits and writes them to fastq_filtrator_results/<name>.fastq. A limit
like -g 60 means 0 to 60. Two numbers, -g 40,60, give both ends. Limits
are inclusive. Qualities are Phred33.

The flags for filter are:
	-o name
		Output name. The input base name is used if not given and
		.fastq is added if missing.
	-d dir
		Results directory, created if necessary.
	-g bound
		GC content in percent, default 0,100
	-l bound
		Sequence length, default 0,4294967296
	-q threshold
		Minimum mean quality, default 0
	--runid delim
		Drop header text from delim onwards. Default "runid". An empty
		string keeps headers as they are.
	--strict
		Stop with an error if the file ends with an incomplete record or
		has lines that are not part of any record. Normally these are
		dropped with a warning.
	-v
		Print a summary.

stats writes a csv with base composition and mean quality by position.

na runs one of transcribe, reverse, complement, reverse_complement,
count_gc, dna_or_rna, get_sequence_length on each sequence and prints one
result per line.

prot does the same for proteins in one letter code, with count_length,
count_nucleotide_length, count_molecular_mass, show_content,
convert_1_to_3 and count_extinction_280nm.

oneline rewrites a multi-line fasta file with each sequence on one line.

rand writes random reads, for trying out the other commands.

Exit status is 0 on success, 2 for a bad command line and 1 for anything
else.
*/
package main
