// seehuhn.de/go/strokeorder - stroke-order diagrams for CJK characters
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package testcases provides KanjiVG-style stroke order documents for
// tests, and an HTTP handler which serves them the way the KanjiVG
// mirror does.
package testcases

import "fmt"

// Glyphs maps characters to their stroke order documents. The documents
// follow the layout of the KanjiVG files: a StrokePaths group with the
// stroke outlines, a StrokeNumbers group with one text element per
// stroke, and the usual KanjiVG preamble.
var Glyphs = map[rune]string{
	'一': ichi,
	'二': ni,
	'三': san,
	'𠀋': jou,
}

// Malformed is a character whose document is not well-formed markup.
const Malformed = '〇'

// Missing is a character for which no document exists.
const Missing = '𪜀'

// Key returns the file name under which the document for r is stored.
func Key(r rune) string {
	return fmt.Sprintf("%05x.svg", r)
}

const preamble = `<?xml version="1.0" encoding="UTF-8"?>
<!--
Copyright (C) 2009/2010/2011 Ulrich Apel.
This work is distributed under the conditions of the Creative Commons
Attribution-Share Alike 3.0 Licence. This means you are free:
* to Share - to copy, distribute and transmit the work
* to Remix - to adapt the work
-->
<!DOCTYPE svg PUBLIC "-//W3C//DTD SVG 1.0//EN" "http://www.w3.org/TR/2001/REC-SVG-20010904/DTD/svg10.dtd" [
<!ATTLIST g
xmlns:kvg CDATA #FIXED "http://kanjivg.tagaini.net"
kvg:element CDATA #IMPLIED
kvg:variant CDATA #IMPLIED
kvg:partial CDATA #IMPLIED
kvg:original CDATA #IMPLIED
kvg:part CDATA #IMPLIED
kvg:number CDATA #IMPLIED
kvg:tradForm CDATA #IMPLIED
kvg:radicalForm CDATA #IMPLIED
kvg:position CDATA #IMPLIED
kvg:radical CDATA #IMPLIED
kvg:phon CDATA #IMPLIED >
<!ATTLIST path
xmlns:kvg CDATA #FIXED "http://kanjivg.tagaini.net"
kvg:type CDATA #IMPLIED >
]>
`

const ichi = preamble + `<svg xmlns="http://www.w3.org/2000/svg" width="109" height="109" viewBox="0 0 109 109">
<g id="kvg:StrokePaths_04e00" style="fill:none;stroke:#000000;stroke-width:3;stroke-linecap:round;stroke-linejoin:round;">
<g id="kvg:04e00" kvg:element="一" kvg:radical="general">
	<path id="kvg:04e00-s1" kvg:type="㇐" d="M11,54.25c3.19,0.62,6.25,0.75,9.73,0.5c20.64-1.5,50.39-5.12,68.58-5.24c3.6-0.02,5.77,0.24,7.57,0.49"/>
</g>
</g>
<g id="kvg:StrokeNumbers_04e00" style="font-size:8;fill:#808080">
	<text transform="matrix(1 0 0 1 4.25 54.13)">1</text>
</g>
</svg>
`

const ni = preamble + `<svg xmlns="http://www.w3.org/2000/svg" width="109" height="109" viewBox="0 0 109 109">
<g id="kvg:StrokePaths_04e8c" style="fill:none;stroke:#000000;stroke-width:3;stroke-linecap:round;stroke-linejoin:round;">
<g id="kvg:04e8c" kvg:element="二" kvg:radical="general">
	<path id="kvg:04e8c-s1" kvg:type="㇐" d="M25.5,27.25c2,0.62,4.75,0.75,6.75,0.5c10.25-1.25,33.12-4.25,43.38-4.5c2.15-0.05,3.88,0.12,5.12,0.5"/>
	<path id="kvg:04e8c-s2" kvg:type="㇐" d="M13,80.25c3.38,0.85,7.12,0.87,10.49,0.5c13.89-1.5,44.46-4.71,63.49-4.75c3.54-0.01,6.62,0.25,9.01,0.5"/>
</g>
</g>
<g id="kvg:StrokeNumbers_04e8c" style="font-size:8;fill:#808080">
	<text transform="matrix(1 0 0 1 18.50 28.50)">1</text>
	<text transform="matrix(1 0 0 1 6.50 81.50)">2</text>
</g>
</svg>
`

const san = preamble + `<svg xmlns="http://www.w3.org/2000/svg" width="109" height="109" viewBox="0 0 109 109">
<g id="kvg:StrokePaths_04e09" style="fill:none;stroke:#000000;stroke-width:3;stroke-linecap:round;stroke-linejoin:round;">
<g id="kvg:04e09" kvg:element="三" kvg:radical="general">
	<path id="kvg:04e09-s1" kvg:type="㇐" d="M25.25,23.5c2.25,0.58,4.91,0.62,7.14,0.38c10.12-1.08,30.12-3.58,42.24-3.95c2.43-0.07,3.83,0.14,5.05,0.48"/>
	<path id="kvg:04e09-s2" kvg:type="㇐" d="M30.5,55.25c1.75,0.55,4.09,0.62,5.93,0.41c8.82-1.03,21.4-2.63,31.77-3.02c1.97-0.07,3.45,0.11,4.55,0.46"/>
	<path id="kvg:04e09-s3" kvg:type="㇐" d="M14,87.02c3.04,0.89,6.78,0.88,9.86,0.52c16.5-1.94,42.89-4.47,62.59-4.58c3.27-0.02,6.3,0.27,8.55,0.78"/>
</g>
</g>
<g id="kvg:StrokeNumbers_04e09" style="font-size:8;fill:#808080">
	<text transform="matrix(1 0 0 1 18.25 24.63)">1</text>
	<text transform="matrix(1 0 0 1 23.50 56.13)">2</text>
	<text transform="matrix(1 0 0 1 7.25 88.13)">3</text>
</g>
</svg>
`

// jou is outside the Basic Multilingual Plane.
const jou = preamble + `<svg xmlns="http://www.w3.org/2000/svg" width="109" height="109" viewBox="0 0 109 109">
<g id="kvg:StrokePaths_2000b" style="fill:none;stroke:#000000;stroke-width:3;stroke-linecap:round;stroke-linejoin:round;">
<g id="kvg:2000b" kvg:element="𠀋">
	<path id="kvg:2000b-s1" kvg:type="㇐" d="M15.5,21.5c2.5,0.62,5.25,0.58,7.75,0.38c16.5-1.31,40.62-3.41,60.25-3.74c2.47-0.04,4.5,0.11,6,0.36"/>
	<path id="kvg:2000b-s2" kvg:type="㇑" d="M53.37,22.5c0.94,0.94,1.38,2.5,1.38,4.25c0,6.5,0.12,58.62,0.12,63.62c0,9.38-5.62,4.5-7.38,3.12"/>
	<path id="kvg:2000b-s3" kvg:type="㇔" d="M57.25,45.75c6.25,3.12,16.12,9.62,19.75,14.5"/>
</g>
</g>
<g id="kvg:StrokeNumbers_2000b" style="font-size:8;fill:#808080">
	<text transform="matrix(1 0 0 1 8.50 22.63)">1</text>
	<text transform="matrix(1 0 0 1 45.50 32.50)">2</text>
	<text transform="matrix(1 0 0 1 63.50 45.50)">3</text>
</g>
</svg>
`

// broken has an end tag which does not match its start tag.
const broken = preamble + `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 109 109">
<g id="kvg:StrokePaths_03007" style="fill:none;stroke:#000000;stroke-width:3;">
	<path d="M54,20c-19,0-34,15-34,34s15,34,34,34s34-15,34-34s-15-34-34-34z"/>
</path>
</svg>
`
