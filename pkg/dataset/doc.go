/*
Package dataset reads problem instances from instance files and reads and writes the ground truth records
derived from them.
*/
package dataset
