// 19 Oct 2026

/*
Package fqfilter picks reads out of a fastq file by GC content, length
and mean quality, and writes the survivors to a results directory.

Each of the GC and length limits is a closed interval. Given a single
number b, the interval is [0, b]. Given two, lo and hi, it is [lo, hi].
Quality has only a lower limit, which is the arithmetic mean of the
Phred scores, with the Phred33 offset. Phred64 files are not recognised.

A read is kept if
	lo_gc <= GC% <= hi_gc
	lo_len <= length <= hi_len
	mean quality >= minimum
GC% is rounded to two decimal places before it is compared.
Reads with an empty sequence are never kept.
*/
package fqfilter
