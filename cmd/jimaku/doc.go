// Command jimaku converts character-timed alignment data for Japanese
// narration into display-ready SRT subtitles.
package main
