package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/sjson"

	"github.com/rstack-lang/rstack/pkg/kernel"
)

var wordsJSON bool

var wordsCmd = &cobra.Command{
	Use:   "words [file]",
	Short: "Execute rstack source then list its custom (DEF'd) words",
	Long: `Run a program and report every User word left in the dictionary
afterward: name, description (if the DEF site had a trailing "# text"
comment), and whether it is currently protected from DEL/redefinition.`,
	Args: cobra.MaximumNArgs(1),
	RunE: listWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "execute inline source instead of reading from a file")
	wordsCmd.Flags().BoolVar(&wordsJSON, "json", false, "emit the word list as JSON")
}

func listWords(_ *cobra.Command, args []string) error {
	source, _, err := readSource(args)
	if err != nil {
		return err
	}

	k := kernel.New()
	result := k.Execute(source)
	if result.Status != "OK" {
		return fmt.Errorf("%s", result.Status)
	}

	info := k.GetCustomWordsInfo()
	if wordsJSON {
		return printWordsJSON(info)
	}

	for _, w := range info {
		desc := "-"
		if w.Description != nil {
			desc = *w.Description
		}
		fmt.Printf("%-20s %-8v %s\n", w.Name, w.Protected, desc)
	}
	return nil
}

// printWordsJSON builds the JSON array with sjson.Set one field at a
// time rather than encoding/json.Marshal, the way a host binding
// assembles a wire message field by field.
func printWordsJSON(info []kernel.CustomWordInfo) error {
	doc := "[]"
	var err error
	for i, w := range info {
		prefix := fmt.Sprintf("%d", i)
		doc, err = sjson.Set(doc, prefix+".name", w.Name)
		if err != nil {
			return err
		}
		doc, err = sjson.Set(doc, prefix+".protected", w.Protected)
		if err != nil {
			return err
		}
		if w.Description != nil {
			doc, err = sjson.Set(doc, prefix+".description", *w.Description)
		} else {
			doc, err = sjson.SetRaw(doc, prefix+".description", "null")
		}
		if err != nil {
			return err
		}
	}
	fmt.Println(doc)
	return nil
}
