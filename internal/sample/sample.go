// Package sample ships a small built-in schedule log so the tool can be
// tried without any input file.
package sample

// Data is a week of example schedule rows in the standard format
const Data = `Mar 2, 2025 - 7:34 PM: Breastfeeding
Mar 2, 2025 - 10:16 PM: Breastfeeding
Mar 2, 2025 - 10:19 PM: Wet diaper
Mar 2, 2025 - 11:00 PM: Breastfeeding
Mar 3, 2025 - 2:06 AM: Breastfeeding
Mar 3, 2025 - 5:05 AM: Breastfeeding
Mar 3, 2025 - 5:23 AM: Wet diaper
Mar 3, 2025 - 6:54 AM: Breastfeeding
Mar 3, 2025 - 8:11 AM: Wet diaper
Mar 3, 2025 - 8:16 AM: Breastfeeding
Mar 3, 2025 - 9:53 AM: Breastfeeding
Mar 3, 2025 - 10:06 AM: Poopy diaper
Mar 3, 2025 - 11:47 AM: Breastfeeding
Mar 3, 2025 - 12:01 PM: Wet diaper
Mar 3, 2025 - 1:46 PM: Breastfeeding
Mar 3, 2025 - 1:48 PM: Wet diaper
Mar 3, 2025 - 1:49 PM: Poopy diaper
Mar 3, 2025 - 4:30 PM: Breastfeeding
Mar 3, 2025 - 6:30 PM: Breastfeeding
Mar 3, 2025 - 6:43 PM: Wet diaper
Mar 3, 2025 - 9:08 PM: Breastfeeding
Mar 3, 2025 - 10:05 PM: Wet diaper
Mar 3, 2025 - 10:24 PM: Breastfeeding
Mar 9, 2025 - 10:11 AM: Synthroid
Mar 9, 2025 - 4:15 PM: Poopy diaper(light)
Mar 9, 2025 - 5:00 PM: Struggling to sleep
Mar 10, 2025 - 10:15 AM: Synthroid
Mar 10, 2025 - 4:21 AM: Struggling to poop
Mar 10, 2025 - 4:30 AM: Breastfeeding
Mar 10, 2025 - 5:00 AM: Breastfeeding
Mar 10, 2025 - 6:00 AM: Breastfeeding
`
