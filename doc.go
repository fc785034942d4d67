/*
Package hifitime provides high-precision, leap-second-aware time handling for
aerospace and GNSS applications.

Duration is a fixed-point signed time span with nanosecond precision spanning
+/-32,768 centuries, stored as a 16-bit century count and a 64-bit
nanoseconds-into-century count rather than as a float64 of seconds. This
avoids the precision loss a float64 suffers once a duration's magnitude grows
much beyond a few years.

Epoch is an instant in time, stored internally as a Duration since the TAI
reference epoch of 1900-01-01 00:00:00. TAI is continuous and has no leap
seconds, which makes it the correct scale for internal storage; every other
supported scale (UTC, TT, ET, TDB, GPST, GST, BDT, Unix) is a view computed
from the TAI duration on demand.

## FAQ

1) Why not use time.Time and time.Duration?

time.Duration is an int64 count of nanoseconds, which overflows at about 292
years; spacecraft mission timelines and epoch arithmetic routinely exceed
that range. time.Time has no notion of TAI, ET, or TDB, and treats leap
seconds inconsistently depending on the platform's libc. Epoch and Duration
exist to give exact, portable answers across the timescales GNSS and
astrodynamics work actually requires.

2) Why TAI as the internal representation rather than UTC?

UTC is not a continuous timescale: it has inserted (and in principle could
remove) leap seconds, so computing an elapsed duration across a leap second
boundary in UTC requires consulting the leap second table anyway. Storing
everything in TAI means only the UTC conversion path needs the table; TT, ET,
TDB, GPST, GST, and BDT are all leap-second-free. TT, GPST, GST, and BDT are
fixed offsets from TAI; ET and TDB add a small periodic term on top of TT.

3) Is this package thread-safe?

Yes. The leap second table is protected by a RWMutex (see leapseconds.go).
Duration and Epoch values themselves are immutable value types, so they are
safe to share across goroutines without any locking.

4) Why global state for the leap second table?

The table changes only when a new leap second is announced, typically a few
months' notice from IERS, and is applied identically no matter which part of
a program performs the conversion. A non-global table would need to be
threaded through every constructor and plumbed to every goroutine that
touches UTC, for no corresponding benefit.

5) Why does Duration use a custom fixed-point representation instead of
big.Int everywhere?

Add, Sub, Neg and comparisons work directly on the two fields and never
allocate a big.Int. Decompose and TryTruncatedNanoseconds use int64 nanoseconds
while the magnitude fits (under 3 centuries); Decompose falls back to big.Int
beyond that. TotalNanoseconds, FromTotalNanoseconds, Mul, MulFloat, Div and
the rounding methods always go through big.Int.

6) How correct is this package?

The leap second table, the ET/TDB iterative solver constants, and every
timescale offset are taken from the reference hifitime implementation and
IERS bulletins; the test suite exercises the boundary cases called out in its
own documentation (zero-crossing Duration comparisons, leap second Gregorian
round-trips, the Julian-day and Unix epoch anchors). If a conversion looks
wrong, please file an issue with the specific timestamp and expected value.
*/
package hifitime
