package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/OpenPecha/durchen-content-annotation/internal/iotest"
)

func TestCLIParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
		want params
	}{
		{
			desc: "minimal",
			give: []string{"-text", "text.txt", "-notes", "durchen.json"},
			want: params{
				Text:  "text.txt",
				Notes: "durchen.json",
			},
		},
		{
			desc: "many arguments",
			give: []string{
				"-text", "text.txt",
				"-notes", "durchen.json",
				"-segments", "segmentation.json",
				"-segment", "intro=0:20",
				"-segment=body=20:40",
				"-debug=log.txt",
				"-o", "out.json",
			},
			want: params{
				Text:         "text.txt",
				Notes:        "durchen.json",
				Segmentation: "segmentation.json",
				Segments: []segmentFlag{
					{ID: "intro", Start: 0, End: 20},
					{ID: "body", Start: 20, End: 40},
				},
				Debug:  "log.txt",
				Output: "out.json",
			},
		},
		{
			desc: "whole text",
			give: []string{
				"-text", "text.txt",
				"-notes", "durchen.json",
				"-segments", "segmentation.json",
				"-whole",
			},
			want: params{
				Text:         "text.txt",
				Notes:        "durchen.json",
				Segmentation: "segmentation.json",
				Whole:        true,
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			got, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestCLIParser_env(t *testing.T) {
	t.Setenv("DURCHEN_TEXT", "env-text.txt")
	t.Setenv("DURCHEN_NOTES", "env-durchen.json")

	got, err := (&cliParser{
		Stdout: iotest.Writer(t),
		Stderr: iotest.Writer(t),
	}).Parse(nil)
	require.NoError(t, err)

	assert.Equal(t, "env-text.txt", got.Text)
	assert.Equal(t, "env-durchen.json", got.Notes)
}

func TestCLIParser_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		desc string
		give []string
	}{
		{
			desc: "no arguments",
		},
		{
			desc: "missing notes",
			give: []string{"-text", "text.txt"},
		},
		{
			desc: "missing text",
			give: []string{"-notes", "durchen.json"},
		},
		{
			desc: "unexpected positional",
			give: []string{"-text", "t", "-notes", "n", "extra"},
		},
		{
			desc: "segment without span",
			give: []string{"-segment", "intro"},
		},
		{
			desc: "segment without colon",
			give: []string{"-segment", "intro=5"},
		},
		{
			desc: "segment with bad offset",
			give: []string{"-segment", "intro=a:b"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.desc, func(t *testing.T) {
			t.Parallel()

			_, err := (&cliParser{
				Stdout: iotest.Writer(t),
				Stderr: iotest.Writer(t),
			}).Parse(tt.give)
			assert.Error(t, err)
		})
	}
}

func TestSegmentFlag_roundTrip(t *testing.T) {
	t.Parallel()

	var sf segmentFlag
	require.NoError(t, sf.Set("seg1=3:14"))
	assert.Equal(t, segmentFlag{ID: "seg1", Start: 3, End: 14}, sf)
	assert.Equal(t, "seg1=3:14", sf.String())
}
